package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceUserWithRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("seller", "/seller/products/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if err := svc.SetUserRoles(1, []string{"seller"}); err != nil {
		t.Fatalf("set user roles failed: %v", err)
	}

	allow, err := svc.EnforceUser(1, "/api/v1/seller/products/42", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceUser(1, "/api/v1/seller/products/42", "POST")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestSetUserRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("customer", "/orders", "GET"); err != nil {
		t.Fatalf("grant customer policy failed: %v", err)
	}
	if err := svc.GrantRolePolicy("seller", "/seller/orders", "GET"); err != nil {
		t.Fatalf("grant seller policy failed: %v", err)
	}

	if err := svc.SetUserRoles(2, []string{"customer"}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	roles, err := svc.GetUserRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:customer" {
		t.Fatalf("roles want [role:customer], got=%v", roles)
	}

	if err := svc.SetUserRoles(2, []string{"seller"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}
	roles, err = svc.GetUserRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:seller" {
		t.Fatalf("roles want [role:seller], got=%v", roles)
	}

	allow, err := svc.EnforceUser(2, "/orders", "GET")
	if err != nil {
		t.Fatalf("enforce old role failed: %v", err)
	}
	if allow {
		t.Fatalf("expected old role permission removed")
	}

	allow, err = svc.EnforceUser(2, "/seller/orders", "GET")
	if err != nil {
		t.Fatalf("enforce new role failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected new role permission granted")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/seller/orders/:id", want: "/seller/orders/:id"},
		{in: "/seller/orders/:id", want: "/seller/orders/:id"},
		{in: "seller/orders", want: "/seller/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	wantRoles := map[string]bool{
		"role:customer": true,
		"role:seller":   true,
	}
	for _, role := range roles {
		delete(wantRoles, role)
	}
	if len(wantRoles) != 0 {
		t.Fatalf("builtin roles missing: %v", wantRoles)
	}

	if err := svc.SetUserRoles(3, []string{"seller"}); err != nil {
		t.Fatalf("set user roles failed: %v", err)
	}

	allow, err := svc.EnforceUser(3, "/cart", "GET")
	if err != nil {
		t.Fatalf("enforce inherited customer failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected inherited customer permission")
	}

	allow, err = svc.EnforceUser(3, "/seller/orders/12/status", "PATCH")
	if err != nil {
		t.Fatalf("enforce seller status failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected seller status permission")
	}

	allow, err = svc.EnforceUser(3, "/seller/orders", "DELETE")
	if err != nil {
		t.Fatalf("enforce seller delete failed: %v", err)
	}
	if allow {
		t.Fatalf("expected seller orders deny delete")
	}
}
