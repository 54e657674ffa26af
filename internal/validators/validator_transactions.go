package validators

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-reward-keeper/internal/logger"
	"github.com/MKhiriev/go-reward-keeper/internal/utils"
	"github.com/MKhiriev/go-reward-keeper/models"
)

// TransactionValidator implements Validator for reward requests: a whole
// []models.Transaction or a single models.Transaction (value or pointer).
//
// The reference "now" used by the TooOld rule is read from the injected
// clock once per Validate call.
type TransactionValidator struct {
	clock utils.Clock
	ids   utils.IDGenerator
}

// NewTransactionValidator constructs a TransactionValidator evaluating
// time-based rules against clock.
func NewTransactionValidator(clock utils.Clock) Validator {
	return &TransactionValidator{
		clock: clock,
		ids:   utils.NewUUIDGenerator(),
	}
}

func (v *TransactionValidator) Validate(ctx context.Context, obj any, rules ...RuleName) error {
	for _, name := range rules {
		if _, ok := MessageFor(name); !ok {
			return ErrUnknownRule
		}
	}

	now := v.clock.Now()

	switch value := obj.(type) {
	case []models.Transaction:
		return v.validateList(ctx, value, now, rules...)
	case models.Transaction:
		return v.validateTransaction(ctx, value, -1, now, rules...)
	case *models.Transaction:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTransaction(ctx, *value, -1, now, rules...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TransactionValidator) validateList(ctx context.Context, list []models.Transaction, now time.Time, rules ...RuleName) error {
	for _, rule := range listRules {
		if !selected(rule.Name, rules) {
			continue
		}
		if rule.Violated(list, now) {
			return v.violation(ctx, rule.Name, rule.Message, rule.Status, rule.Err, -1)
		}
	}

	for i, t := range list {
		if err := v.validateTransaction(ctx, t, i, now, rules...); err != nil {
			return err
		}
	}

	return nil
}

func (v *TransactionValidator) validateTransaction(ctx context.Context, t models.Transaction, index int, now time.Time, rules ...RuleName) error {
	for _, rule := range transactionRules {
		if !selected(rule.Name, rules) {
			continue
		}
		if rule.Violated(t, now) {
			return v.violation(ctx, rule.Name, rule.Message, rule.Status, rule.Err, index)
		}
	}

	return nil
}

func (v *TransactionValidator) violation(ctx context.Context, name RuleName, message string, status int, sentinel error, index int) error {
	verr := &ValidationError{
		Rule:          name,
		Message:       message,
		Status:        status,
		CorrelationID: v.ids.Generate(),
		Index:         index,
		err:           sentinel,
	}

	logger.FromContext(ctx).Warn().
		Str("correlation_id", verr.CorrelationID).
		Str("rule", string(name)).
		Int("index", index).
		Msg(message)

	return verr
}

// selected reports whether rule should run; an empty scope runs every rule.
func selected(rule RuleName, scope []RuleName) bool {
	return len(scope) == 0 || slices.Contains(scope, rule)
}
