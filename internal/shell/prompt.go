package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/angelmondragon/stockroom/pkg/enums"
	pkgerrors "github.com/angelmondragon/stockroom/pkg/errors"
	"github.com/shopspring/decimal"
)

// errInputClosed signals EOF on the operator stream; the shell treats it
// like a clean exit.
var errInputClosed = errors.New("input closed")

func (s *Shell) promptLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading input")
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) promptInt(label string) (int, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return 0, err
	}
	value, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("expected a number, got %q", raw))
	}
	return value, nil
}

func (s *Shell) promptDecimal(label string) (decimal.Decimal, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return decimal.Zero, err
	}
	value, convErr := decimal.NewFromString(raw)
	if convErr != nil {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("expected a decimal amount, got %q", raw))
	}
	return value, nil
}

func (s *Shell) promptOrderStatus(label string) (enums.OrderStatus, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return "", err
	}
	status, parseErr := enums.ParseOrderStatus(raw)
	if parseErr != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, parseErr.Error())
	}
	return status, nil
}

// Optional prompts: a blank line keeps the current value.

func (s *Shell) promptOptionalString(label string) (*string, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	return &raw, nil
}

func (s *Shell) promptOptionalInt(label string) (*int, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("expected a number, got %q", raw))
	}
	return &value, nil
}

func (s *Shell) promptOptionalDecimal(label string) (*decimal.Decimal, error) {
	raw, err := s.promptLine(label)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	value, convErr := decimal.NewFromString(raw)
	if convErr != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("expected a decimal amount, got %q", raw))
	}
	return &value, nil
}
