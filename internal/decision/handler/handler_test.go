package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	"github.com/akasenomm/intern-decision-engine-backend/internal/decision/handler/mocks"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/requestcontext"
	"github.com/akasenomm/intern-decision-engine-backend/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/decision-mocks.go -package=mocks Service
type DecisionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockService
	router      chi.Router
}

func TestDecisionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DecisionHandlerSuite))
}

func (s *DecisionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.mockService, logger).Register(s.router)
}

func (s *DecisionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DecisionHandlerSuite) post(body any) *http.Request {
	return testutil.NewJSONRequest(s.T(), http.MethodPost, "/loan/decision", body)
}

func body(code string, amount, period int, country string) map[string]any {
	return map[string]any{
		"personalCode": code,
		"loanAmount":   amount,
		"loanPeriod":   period,
		"country":      country,
	}
}

func (s *DecisionHandlerSuite) TestApproved() {
	s.mockService.EXPECT().Evaluate(gomock.Any(), decision.Request{
		PersonalCode: "50307172740",
		LoanAmount:   4000,
		LoanPeriod:   12,
		Country:      decision.CountryEstonia,
	}).Return(&decision.Decision{LoanAmount: 2000, LoanPeriod: 20}, nil)

	rr := testutil.DoRequest(s.router, s.post(body(" 50307172740 ", 4000, 12, "estonia")))

	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
	s.Equal(2000.0, (*resp)["loanAmount"])
	s.Equal(20.0, (*resp)["loanPeriod"])
	s.Contains(*resp, "errorMessage")
	s.Nil((*resp)["errorMessage"])
}

func (s *DecisionHandlerSuite) TestServiceErrors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid personal code", decision.ErrInvalidPersonalCode, http.StatusBadRequest, "Invalid personal ID code!"},
		{"restricted age", decision.ErrRestrictedAge, http.StatusBadRequest, "Restricted age"},
		{"invalid country", decision.ErrInvalidCountry, http.StatusBadRequest, "Invalid country!"},
		{"invalid amount", decision.ErrInvalidLoanAmount, http.StatusBadRequest, "Invalid loan amount!"},
		{"invalid period", decision.ErrInvalidLoanPeriod, http.StatusBadRequest, "Invalid loan period!"},
		{"debtor", decision.ErrDebtor, http.StatusNotFound, "No valid loan for debtor"},
		{"no loan within period", decision.ErrNoLoanWithinPeriod, http.StatusNotFound, "No valid loan found!"},
		{"unexpected failure", errors.New("parser exploded"), http.StatusInternalServerError, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := testutil.DoRequest(s.router, s.post(body("50307172740", 4000, 12, "ESTONIA")))
			testutil.AssertDecisionError(s.T(), rr, tt.wantStatus, tt.wantMsg)
		})
	}
}

func (s *DecisionHandlerSuite) TestBindingErrors() {
	tests := []struct {
		name    string
		req     *http.Request
		wantMsg string
	}{
		{
			name:    "missing amount",
			req:     s.post(map[string]any{"personalCode": "50307172740", "loanPeriod": 12, "country": "ESTONIA"}),
			wantMsg: "loanAmount is required",
		},
		{
			name:    "missing personal code",
			req:     s.post(map[string]any{"loanAmount": 4000, "loanPeriod": 12, "country": "ESTONIA"}),
			wantMsg: "personalCode is required",
		},
		{
			name:    "missing country",
			req:     s.post(map[string]any{"personalCode": "50307172740", "loanAmount": 4000, "loanPeriod": 12}),
			wantMsg: "country is required",
		},
		{
			name:    "oversized personal code",
			req:     s.post(body("503071727405030717274050307172740", 4000, 12, "ESTONIA")),
			wantMsg: "personalCode must be at most 20 characters",
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rr := testutil.DoRequest(s.router, tt.req)
			testutil.AssertDecisionError(s.T(), rr, http.StatusBadRequest, tt.wantMsg)
		})
	}

	s.Run("malformed JSON", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/loan/decision", `{"personalCode":`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("fractional amount", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/loan/decision",
			`{"personalCode":"50307172740","loanAmount":4000.5,"loanPeriod":12,"country":"ESTONIA"}`)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *DecisionHandlerSuite) TestZeroValuesReachService() {
	s.mockService.EXPECT().Evaluate(gomock.Any(), decision.Request{
		PersonalCode: "50307172740",
		LoanAmount:   0,
		LoanPeriod:   0,
		Country:      decision.CountryLatvia,
	}).Return(nil, decision.ErrInvalidLoanAmount)

	rr := testutil.DoRequest(s.router, s.post(body("50307172740", 0, 0, "Latvia")))
	testutil.AssertDecisionError(s.T(), rr, http.StatusBadRequest, "Invalid loan amount!")
}

func (s *DecisionHandlerSuite) TestRequestContextIsForwarded() {
	s.mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ decision.Request) (*decision.Decision, error) {
			s.Equal("req-42", requestcontext.RequestID(ctx))
			return &decision.Decision{LoanAmount: 3600, LoanPeriod: 12}, nil
		})

	req := s.post(body("38411266610", 4000, 12, "ESTONIA"))
	req = req.WithContext(requestcontext.WithRequestID(req.Context(), "req-42"))
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
}
