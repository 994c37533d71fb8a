package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	dErrors "github.com/akasenomm/intern-decision-engine-backend/pkg/domain-errors"
)

func intPtr(v int) *int { return &v }

func TestDecisionRequestValidate(t *testing.T) {
	t.Run("nil request", func(t *testing.T) {
		var r *DecisionRequest
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("trims and converts", func(t *testing.T) {
		r := &DecisionRequest{
			PersonalCode: " 38411266610\n",
			LoanAmount:   intPtr(4000),
			LoanPeriod:   intPtr(12),
			Country:      " lithuania ",
		}
		require.NoError(t, r.Validate())
		assert.Equal(t, decision.Request{
			PersonalCode: "38411266610",
			LoanAmount:   4000,
			LoanPeriod:   12,
			Country:      decision.CountryLithuania,
		}, r.ToDomain())
	})

	t.Run("unknown country passes binding", func(t *testing.T) {
		r := &DecisionRequest{PersonalCode: "38411266610", LoanAmount: intPtr(4000), LoanPeriod: intPtr(12), Country: "Finland"}
		require.NoError(t, r.Validate())
		assert.Equal(t, decision.Country("FINLAND"), r.ToDomain().Country)
	})

	t.Run("missing period", func(t *testing.T) {
		r := &DecisionRequest{PersonalCode: "38411266610", LoanAmount: intPtr(4000), Country: "ESTONIA"}
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, "loanPeriod is required", err.Error())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("whitespace code counts as missing", func(t *testing.T) {
		r := &DecisionRequest{PersonalCode: "   ", LoanAmount: intPtr(4000), LoanPeriod: intPtr(12), Country: "ESTONIA"}
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, "personalCode is required", err.Error())
	})
}
