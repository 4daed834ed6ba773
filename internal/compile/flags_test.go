package compile

import (
	"testing"

	"github.com/sandia-minimega/tlgen/internal/config"
)

func TestInheritanceCheckerExtendsUnknownFlag(t *testing.T) {
	scheme := &config.Scheme{FlagInheritance: map[string]string{
		"channelFull": "chat",
		"chatFull":    "chat",
	}}
	ic := NewInheritanceChecker()

	parent := buildConstructorOrFail(t, "chatFull flags:# noforwards:flags.0?true = ChatFull;", false, scheme)
	if err := ic.Check(parent, scheme); err != nil {
		t.Fatal(err)
	}

	child := buildConstructorOrFail(t, "channelFull flags:# noforwards:flags.0?true slowmode:flags.1?true = ChatFull;", false, scheme)
	if err := ic.Check(child, scheme); err != nil {
		t.Fatalf("expected unknown child flag to extend silently, got %v", err)
	}
}

func TestInheritanceCheckerRejectsBitMismatch(t *testing.T) {
	scheme := &config.Scheme{FlagInheritance: map[string]string{
		"channelFull": "chat",
		"chatFull":    "chat",
	}}
	ic := NewInheritanceChecker()

	parent := buildConstructorOrFail(t, "chatFull flags:# noforwards:flags.0?true = ChatFull;", false, scheme)
	if err := ic.Check(parent, scheme); err != nil {
		t.Fatal(err)
	}

	child := buildConstructorOrFail(t, "channelFull flags:# noforwards:flags.1?true = ChatFull;", false, scheme)
	if err := ic.Check(child, scheme); err == nil {
		t.Error("expected error when the same flag name claims a different bit")
	}
}

func TestInheritanceCheckerIgnoresUnlistedConstructors(t *testing.T) {
	scheme := &config.Scheme{FlagInheritance: map[string]string{}}
	ic := NewInheritanceChecker()
	c := buildConstructorOrFail(t, "chatFull flags:# noforwards:flags.0?true = ChatFull;", false, scheme)
	if err := ic.Check(c, scheme); err != nil {
		t.Fatal(err)
	}
}
