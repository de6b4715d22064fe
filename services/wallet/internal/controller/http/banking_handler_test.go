package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiktok-shop/pkg/logger"
	"tiktok-shop/services/wallet/internal/entity"
	"tiktok-shop/services/wallet/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetBanking(t *testing.T) {
	mockUseCase := new(MockBankingUseCase)
	handler := NewBankingHandler(mockUseCase, logger.NewWithLevel("error"))
	mockUseCase.On("GetBankingProfile", mock.Anything, "seller-1").
		Return(&entity.BankingProfile{ID: "bank-1", BankName: "ACB", AccountNumber: "123456789", AccountName: "LE C"}, nil)
	mockUseCase.On("GetBankingProfile", mock.Anything, "seller-2").Return(nil, entity.ErrBankInfoMissing)

	router := setupTestRouter()
	router.GET("/s1/banking", asUser("seller-1", "seller"), handler.GetBanking)
	router.GET("/s2/banking", asUser("seller-2", "seller"), handler.GetBanking)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/s1/banking", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"account_number":"123456789"`)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/s2/banking", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"bank info missing"}`, w.Body.String())
}

func TestSaveBanking_Validation(t *testing.T) {
	mockUseCase := new(MockBankingUseCase)
	handler := NewBankingHandler(mockUseCase, logger.NewWithLevel("error"))
	mockUseCase.On("SaveBankingProfile", mock.Anything, "seller-1", usecase.BankingInput{
		BankName: "Vietcombank", AccountNumber: "0071000123456", AccountName: "PHAM D",
	}).Return(&entity.BankingProfile{ID: "bank-1"}, nil)

	router := setupTestRouter()
	router.PUT("/banking", asUser("seller-1", "seller"), handler.SaveBanking)

	cases := []struct {
		body string
		want int
	}{
		{`{"bank_name":"Vietcombank","account_number":"0071000123456","account_name":"PHAM D"}`, http.StatusOK},
		{`{"bank_name":"Vietcombank","account_number":"12345","account_name":"PHAM D"}`, http.StatusBadRequest},
		{`{"bank_name":"Vietcombank","account_number":"0071-000-123","account_name":"PHAM D"}`, http.StatusBadRequest},
		{`{"bank_name":"Vietcombank","account_number":"123456789012345678901","account_name":"PHAM D"}`, http.StatusBadRequest},
		{`{"account_number":"0071000123456","account_name":"PHAM D"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/banking", bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.want, w.Code, tc.body)
	}
	mockUseCase.AssertNumberOfCalls(t, "SaveBankingProfile", 1)
}
