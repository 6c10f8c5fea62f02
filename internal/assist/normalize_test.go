package assist_test

import (
	"errors"
	"strings"
	"testing"

	"smart-todo-backend/internal/assist"
)

func TestValidateInput(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"Empty", "", assist.ErrTextRequired},
		{"WhitespaceOnly", "   \n\t ", assist.ErrTextTooShort},
		{"SingleRune", "가", assist.ErrTextTooShort},
		{"MinLength", "회의", nil},
		{"Typical", "내일 오후 3시까지 중요한 회의 준비", nil},
		{"MaxLength", strings.Repeat("가", 500), nil},
		{"OverMax", strings.Repeat("가", 501), assist.ErrTextTooLong},
		{"PaddedOverMax", "  " + strings.Repeat("a", 500) + "  ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := assist.ValidateInput(tc.text)
			if !errors.Is(got, tc.want) && got != tc.want {
				t.Errorf("ValidateInput(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestPreprocessInput(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"Trimmed", "  회의 준비  ", "회의 준비"},
		{"CollapsedSpaces", "회의    준비", "회의 준비"},
		{"MixedWhitespace", "내일\t오후 3시까지\n회의 준비", "내일 오후 3시까지 회의 준비"},
		{"AlreadyClean", "장보기", "장보기"},
		{"CasePreserved", "  Review  PR  ", "Review PR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := assist.PreprocessInput(tc.text); got != tc.want {
				t.Errorf("PreprocessInput(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}
