// Inka - Movie Recommendation Engine
// Copyright 2026 donayy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/donayy/inka

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Level string `validate:"oneof=debug info warn"`
	Limit int    `validate:"min=1,max=100"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Name: "popular", Level: "info", Limit: 10}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructSingleError(t *testing.T) {
	req := sampleRequest{Name: "", Level: "info", Limit: 10}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Fields()) != 1 {
		t.Fatalf("Fields() = %v, want 1 error", err.Fields())
	}
	fe := err.Fields()[0]
	if fe.Field != "Name" || fe.Tag != "required" {
		t.Errorf("field error = %+v, want Name/required", fe)
	}
	if fe.Message != "Name is required" {
		t.Errorf("message = %q, want %q", fe.Message, "Name is required")
	}
	details := err.Details()
	if details["field"] != "Name" {
		t.Errorf("details = %v, want single-field shape", details)
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	req := sampleRequest{Name: "", Level: "loud", Limit: 500}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Fields()) != 3 {
		t.Fatalf("len(Fields()) = %d, want 3", len(err.Fields()))
	}
	if !strings.Contains(err.Error(), "Limit must be at most 100") {
		t.Errorf("combined error %q missing max message", err.Error())
	}
	if _, ok := err.Details()["fields"]; !ok {
		t.Errorf("details = %v, want multi-field shape", err.Details())
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator must return the same instance")
	}
}
