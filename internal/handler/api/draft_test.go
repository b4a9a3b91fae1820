//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rodizio-reservas/internal/handler/api"
	resdto "rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/notice"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/tests/common/builder"
	"rodizio-reservas/tests/common/httptest"
	"rodizio-reservas/tests/common/testutil"
	commandsmock "rodizio-reservas/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDraftCommands
	handler      *api.DraftHandler
	state        *commands.DraftState
	base         string
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)

	cfg := config.NewTestConfig()
	cfg.Server.MaxUploadSize = 16
	s.handler = api.NewDraftHandler(s.mockCommands, cfg)

	s.state = builder.NewDraftBuilder().BuildState()
	s.base = "/drafts/" + s.state.ID.String()

	s.router.POST("/drafts", s.handler.Start)
	s.router.GET("/drafts/:id", s.handler.Get)
	s.router.PUT("/drafts/:id/party-size", s.handler.SetPartySize)
	s.router.PUT("/drafts/:id/participants/:index/name", s.handler.SetParticipantName)
	s.router.POST("/drafts/:id/participants/:index/bracket", s.handler.ToggleBracket)
	s.router.PUT("/drafts/:id/phone", s.handler.SetPhone)
	s.router.POST("/drafts/:id/coupon", s.handler.ApplyCoupon)
	s.router.POST("/drafts/:id/receipt", s.handler.UploadReceipt)
	s.router.POST("/drafts/:id/prices/refresh", s.handler.RefreshPrices)
	s.router.POST("/drafts/:id/submit", s.handler.Submit)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

type testCaseDraft struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestStart
// ================================================================================

func (s *DraftHandlerTestSuite) TestStart() {
	s.Run("success: 201 with the rendered draft", func() {
		s.mockCommands.EXPECT().Start(gomock.Any()).Return(s.state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil, "")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/drafts/" + s.state.ID.String()})
		s.Equal(s.state.ID.String(), body.ID)
		s.Equal(3, body.PartySize)
		s.Equal("114.90", body.Totals.Subtotal)
		s.Equal("114.90", body.Totals.Total)
		s.Equal("69.90", body.Prices.Formatted.Adult)
		s.Equal("0.00", body.Prices.Formatted.Child0to5)
		s.Equal("CPF", body.Payment.PixType)
		s.Contains(body.Address.MapsURL, "https://maps.google.com?q=")
		s.Nil(body.Notification)
		s.Nil(body.SubmittedID)
	})

	s.Run("success: missing address notice is rendered", func() {
		state := builder.NewDraftBuilder().
			With(func(b *builder.DraftBuilder) { b.Settings.Address.Value = "" }).
			WithNotice(commands.MsgAddressLoadFailed, notice.KindError).
			BuildState()
		s.mockCommands.EXPECT().Start(gomock.Any()).Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil, "")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Notification)
		s.Equal(commands.MsgAddressLoadFailed, body.Notification.Message)
		s.Equal("error", body.Notification.Type)
		s.Empty(body.Address.MapsURL)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DraftHandlerTestSuite) TestGet() {
	s.Run("success: 200", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), s.state.ID).Return(s.state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.base, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid draft id")
	})

	s.Run("error: 404 on unknown draft", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDraftNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})
}

// ================================================================================
// TestSetPartySize
// ================================================================================

func (s *DraftHandlerTestSuite) TestSetPartySize() {
	url := s.base + "/party-size"
	reqBody := map[string]any{"count": 3}

	validation := []testCaseDraft{
		{name: "missing field: count", mutate: testutil.Field("count", nil), expectCode: http.StatusBadRequest},
		{name: "zero count fails required", mutate: testutil.Field("count", 0), expectCode: http.StatusBadRequest},
		{name: "non-numeric count", mutate: testutil.Field("count", "three"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: passes the count through", func() {
		s.mockCommands.EXPECT().SetPartySize(gomock.Any(), s.state.ID, 3).Return(s.state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps command errors to statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "out of range size", commandsError: errs.Mark(errors.New("party size must be between 1 and 100"), commands.ErrDraftValidation), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Invalid draft data"},
			{name: "submitted draft", commandsError: commands.ErrDraftSubmitted, expectedStatus: http.StatusConflict, expectedMsg: "already submitted"},
			{name: "unknown draft", commandsError: commands.ErrDraftNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Draft not found"},
			{name: "unexpected", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetPartySize(gomock.Any(), s.state.ID, 101).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"count": 101}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestParticipants
// ================================================================================

func (s *DraftHandlerTestSuite) TestSetParticipantName() {
	s.Run("success: index and name reach the command", func() {
		s.mockCommands.EXPECT().SetParticipantName(gomock.Any(), s.state.ID, 2, "Caio").Return(s.state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/participants/2/name", map[string]any{"name": "Caio"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-numeric index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/participants/x/name", map[string]any{"name": "Caio"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid participant index")
	})

	s.Run("error: 400 on name too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/participants/1/name", map[string]any{"name": strings.Repeat("a", 121)}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 on index out of range", func() {
		s.mockCommands.EXPECT().SetParticipantName(gomock.Any(), s.state.ID, 9, "Zé").
			Return(nil, errs.Mark(errors.New("participant index out of range"), commands.ErrDraftValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/participants/9/name", map[string]any{"name": "Zé"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid draft data")
	})
}

func (s *DraftHandlerTestSuite) TestToggleBracket() {
	url := s.base + "/participants/1/bracket"

	validation := []testCaseDraft{
		{name: "bracket 0-5", mutate: testutil.Field("bracket", "0-5"), expectCode: http.StatusOK},
		{name: "bracket 6-10", mutate: testutil.Field("bracket", "6-10"), expectCode: http.StatusOK},
		{name: "unknown bracket", mutate: testutil.Field("bracket", "11-15"), expectCode: http.StatusBadRequest},
		{name: "empty bracket", mutate: testutil.Field("bracket", ""), expectCode: http.StatusBadRequest},
		{name: "missing bracket", mutate: testutil.Field("bracket", nil), expectCode: http.StatusBadRequest},
	}

	for _, tc := range validation {
		s.Run(tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), map[string]any{"bracket": "0-5"}, tc.mutate)
			if tc.expectCode == http.StatusOK {
				s.mockCommands.EXPECT().ToggleBracket(gomock.Any(), s.state.ID, 1, requestMap["bracket"]).Return(s.state, nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
			if tc.expectCode == http.StatusOK {
				httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
			} else {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			}
		})
	}
}

func (s *DraftHandlerTestSuite) TestSetPhone() {
	s.Run("success: empty phone is allowed", func() {
		s.mockCommands.EXPECT().SetPhone(gomock.Any(), s.state.ID, "").Return(s.state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/phone", map[string]any{"phone": ""}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on phone too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.base+"/phone", map[string]any{"phone": strings.Repeat("9", 33)}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestApplyCoupon
// ================================================================================

func (s *DraftHandlerTestSuite) TestApplyCoupon() {
	url := s.base + "/coupon"

	s.Run("success: discount and success notice are rendered", func() {
		state := builder.NewDraftBuilder().
			With(func(b *builder.DraftBuilder) {
				b.ID = s.state.ID
				b.CouponCode = "DESCONTO10"
				b.Discount = decimal.NewFromInt(10)
			}).
			WithNotice(commands.MsgCouponApplied, notice.KindSuccess).
			BuildState()
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.state.ID, "DESCONTO10").Return(state, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "DESCONTO10"}, "")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("DESCONTO10", body.CouponCode)
		s.Equal("10.00", body.Discount)
		s.Equal("104.90", body.Totals.Total)
		s.Require().NotNil(body.Notification)
		s.Equal("success", body.Notification.Type)
	})

	s.Run("error: 404 carries the unchanged draft and the notice", func() {
		state := builder.NewDraftBuilder().
			With(func(b *builder.DraftBuilder) { b.ID = s.state.ID }).
			WithNotice(commands.MsgCouponInvalid, notice.KindError).
			BuildState()
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), s.state.ID, "NOPE").Return(state, commands.ErrCouponNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"code": "NOPE"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, commands.MsgCouponInvalid)

		httptest.AssertNotification(s.T(), rec, "error", commands.MsgCouponInvalid)

		var body struct {
			Detail resdto.DraftResponse `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("0.00", body.Detail.Discount)
	})

	s.Run("error: 400 on missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestUploadReceipt
// ================================================================================

func (s *DraftHandlerTestSuite) TestUploadReceipt() {
	url := s.base + "/receipt"

	s.Run("success: file metadata reaches the command", func() {
		state := builder.NewDraftBuilder().
			With(func(b *builder.DraftBuilder) { b.Receipt = "receipts/1_pix.png" }).
			WithNotice(commands.MsgReceiptUploaded, notice.KindSuccess).
			BuildState()
		s.mockCommands.EXPECT().UploadReceipt(gomock.Any(), s.state.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, file commands.ReceiptFile) (*commands.DraftState, error) {
				s.Equal("pix.png", file.Filename)
				s.Equal(int64(4), file.Size)
				return state, nil
			}).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "pix.png", []byte("data"))

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("receipts/1_pix.png", body.Receipt)
	})

	s.Run("error: 400 without a file", func() {
		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Receipt file required")
	})

	s.Run("error: 413 above the upload limit", func() {
		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "big.pdf", []byte(strings.Repeat("x", 17)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "too large")
	})

	s.Run("error: 502 when storage fails", func() {
		state := builder.NewDraftBuilder().WithNotice(commands.MsgReceiptFailed, notice.KindError).BuildState()
		s.mockCommands.EXPECT().UploadReceipt(gomock.Any(), s.state.ID, gomock.Any()).
			Return(state, errs.Mark(errors.New("s3 down"), commands.ErrReceiptUploadFailed)).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "pix.png", []byte("data"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, commands.MsgReceiptFailed)
		httptest.AssertNotification(s.T(), rec, "error", commands.MsgReceiptFailed)
	})
}

func (s *DraftHandlerTestSuite) TestRefreshPrices() {
	s.mockCommands.EXPECT().RefreshPrices(gomock.Any(), s.state.ID).Return(s.state, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.base+"/prices/refresh", nil, "")
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *DraftHandlerTestSuite) TestSubmit() {
	url := s.base + "/submit"
	reservationID := uuid.New()
	submitted := builder.NewDraftBuilder().
		With(func(b *builder.DraftBuilder) { b.SubmittedID = &reservationID }).
		WithNotice(commands.MsgReservationCreated, notice.KindSuccess).
		BuildState()

	s.Run("success: JSON submit sends no file", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.state.ID, gomock.Nil()).Return(submitted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.SubmittedID)
		s.Equal(reservationID.String(), *body.SubmittedID)
		s.Equal(commands.MsgReservationCreated, body.Notification.Message)
	})

	s.Run("success: multipart submit without a file", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.state.ID, gomock.Nil()).Return(submitted, nil).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("success: multipart submit forwards the file", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.state.ID, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, _ uuid.UUID, file *commands.ReceiptFile) (*commands.DraftState, error) {
				s.Equal("pix.pdf", file.Filename)
				return submitted, nil
			}).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, http.MethodPost, url, "pix.pdf", []byte("%PDF"))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps submit failures", func() {
		open := builder.NewDraftBuilder().BuildState()
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "upload failed", commandsError: errs.Mark(errors.New("timeout"), commands.ErrReceiptUploadFailed), expectedStatus: http.StatusBadGateway, expectedMsg: commands.MsgReceiptFailed},
			{name: "insert failed", commandsError: errs.Mark(errors.New("db down"), commands.ErrReservationNotStored), expectedStatus: http.StatusInternalServerError, expectedMsg: commands.MsgReservationFailed},
			{name: "already submitted", commandsError: commands.ErrDraftSubmitted, expectedStatus: http.StatusConflict, expectedMsg: "already submitted"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), s.state.ID, gomock.Nil()).Return(open, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
