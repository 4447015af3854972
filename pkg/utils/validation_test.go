package utils

import (
	"strings"
	"testing"
)

type signupForm struct {
	Name     string `validate:"required,min=20,max=60"`
	Email    string `validate:"required,email"`
	Address  string `validate:"required,max=400"`
	Password string `validate:"required,userpassword"`
	Role     string `validate:"required,oneof=user store_owner"`
}

func validForm() signupForm {
	return signupForm{
		Name:     strings.Repeat("a", 25),
		Email:    "someone@example.com",
		Address:  "12 Example Street",
		Password: "Abcdefg1!",
		Role:     "user",
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	if errs := ValidateStruct(validForm()); len(errs) > 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStruct_NameBoundaries(t *testing.T) {
	cases := []struct {
		length int
		valid  bool
	}{
		{19, false},
		{20, true},
		{60, true},
		{61, false},
	}

	for _, tc := range cases {
		form := validForm()
		form.Name = strings.Repeat("a", tc.length)

		errs := ValidateStruct(form)
		if tc.valid && len(errs) > 0 {
			t.Fatalf("name length %d: expected valid, got %v", tc.length, errs)
		}
		if !tc.valid {
			if msg, ok := errs["Name"]; !ok || msg != "Name must be 20-60 characters" {
				t.Fatalf("name length %d: expected name error, got %v", tc.length, errs)
			}
		}
	}
}

func TestValidateStruct_PasswordPolicy(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Abcdefg1!", true},   // uppercase + special
		{"Abcdefg1", false},   // no special character
		{"abcdefg1!", false},  // no uppercase
		{"Ab1!", false},       // too short
		{"Abcdefg1!Abcdefg1", false}, // 17 chars
		{"A@bcdefg", true},    // @ counts as special
		{"Abcdefg !", false},  // space not allowed
	}

	for _, tc := range cases {
		form := validForm()
		form.Password = tc.password

		errs := ValidateStruct(form)
		if tc.valid && len(errs) > 0 {
			t.Fatalf("password %q: expected valid, got %v", tc.password, errs)
		}
		if !tc.valid && len(errs) == 0 {
			t.Fatalf("password %q: expected rejection", tc.password)
		}
	}
}

func TestValidateStruct_AddressTooLong(t *testing.T) {
	form := validForm()
	form.Address = strings.Repeat("a", 401)

	errs := ValidateStruct(form)
	if msg, ok := errs["Address"]; !ok || msg != "Address must be less than 400 characters" {
		t.Fatalf("expected address error, got %v", errs)
	}
}

func TestValidateStruct_RoleRestricted(t *testing.T) {
	form := validForm()
	form.Role = "admin"

	if errs := ValidateStruct(form); len(errs) == 0 {
		t.Fatalf("expected admin role to be rejected on signup rules")
	}
}

func TestFirstValidationError_FieldOrder(t *testing.T) {
	form := validForm()
	form.Name = "short"
	form.Password = "weak"

	// Name is declared before Password, so its rule is named first.
	if msg := FirstValidationError(form); msg != "Name must be 20-60 characters" {
		t.Fatalf("expected first failing rule to be the name rule, got %q", msg)
	}
}

func TestFirstValidationError_Valid(t *testing.T) {
	if msg := FirstValidationError(validForm()); msg != "" {
		t.Fatalf("expected empty message for valid struct, got %q", msg)
	}
}
