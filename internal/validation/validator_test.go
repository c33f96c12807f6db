// Marquee - Movie Catalog Query and Title Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	Title string `validate:"required,movietitle,max=20"`
	K     int    `validate:"min=1,max=50"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantTag   string
	}{
		{"valid", testRequest{Title: "Heat", K: 5}, "", ""},
		{"missing title", testRequest{K: 5}, "Title", "required"},
		{"blank title", testRequest{Title: "   ", K: 5}, "Title", "movietitle"},
		{"control character", testRequest{Title: "Heat\x00", K: 5}, "Title", "movietitle"},
		{"title too long", testRequest{Title: strings.Repeat("a", 21), K: 5}, "Title", "max"},
		{"k too small", testRequest{Title: "Heat", K: 0}, "K", "min"},
		{"k too large", testRequest{Title: "Heat", K: 51}, "K", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 || errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("errors = %+v, want %s/%s", errs, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	if verr := ValidateVar("k", 10, "min=1,max=10"); verr != nil {
		t.Errorf("ValidateVar(10) = %v", verr)
	}

	verr := ValidateVar("k", 11, "min=1,max=10")
	if verr == nil {
		t.Fatal("ValidateVar(11) = nil, want error")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "k must be at most 10" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "k" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&testRequest{Title: "", K: 0})
	if verr == nil {
		t.Fatal("expected errors")
	}
	apiErr := verr.ToAPIError()
	if !strings.Contains(apiErr.Message, "Title: Title is required") || !strings.Contains(apiErr.Message, "K: K must be at least 1") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if fields, ok := apiErr.Details["fields"].([]map[string]interface{}); !ok || len(fields) != 2 {
		t.Errorf("Details = %v", apiErr.Details)
	}
	if !strings.Contains(verr.Error(), ";") {
		t.Errorf("Error() = %q", verr.Error())
	}
}
