package repository

import (
	"strings"
	"testing"
)

func TestBuildLikeConditionByDialectSQLite(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"title", "description", " "})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if condition != "title LIKE ? OR description LIKE ?" {
		t.Fatalf("sqlite condition mismatch, got %s", condition)
	}
}

func TestBuildLikeConditionByDialectPostgres(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"title"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if !strings.Contains(condition, "ILIKE") {
		t.Fatalf("postgres condition should use ILIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
