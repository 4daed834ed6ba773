package source

import "testing"

func TestIsNullableParam(t *testing.T) {
	cases := []struct {
		comments, name string
		want           bool
	}{
		{"@photo Photo of the user; may be null.", "photo", true},
		{"@photo Photo of the user; pass null to remove.", "photo", true},
		{"@photo Photo of the user.", "photo", false},
		{"@caption Caption; may be null if not set.", "caption", true},
	}
	for _, c := range cases {
		if got := IsNullableParam(c.comments, c.name); got != c.want {
			t.Errorf("IsNullableParam(%q, %q) = %v, want %v", c.comments, c.name, got, c.want)
		}
	}
}

func TestIsNullableVector(t *testing.T) {
	if !IsNullableVector("@users Users list; users may be null.", "users") {
		t.Error("expected nullable vector to be detected")
	}
	if IsNullableVector("@user User; user may be null.", "user") {
		t.Error("non-plural field name must not be treated as a nullable vector")
	}
}

func TestIsBotsOnly(t *testing.T) {
	if !IsBotsOnlyLine("@description Sends a message; for bots only.") {
		t.Error("expected bots-only declaration to be detected")
	}
	if !IsBotsOnlyParam("@reply_markup Keyboard; for bots only.", "reply_markup") {
		t.Error("expected bots-only param to be detected")
	}
	if IsBotsOnlyParam("@reply_markup Keyboard.", "reply_markup") {
		t.Error("unexpected bots-only match")
	}
}

func TestParamDescriptionTag(t *testing.T) {
	if paramNameTag("description") != "param_description" {
		t.Error("description param must map to param_description tag")
	}
	if paramNameTag("text") != "text" {
		t.Error("ordinary param names are unchanged")
	}
}
