package billing

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nextstarsoccer/nss-backend/internal/middleware"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"
	"github.com/nextstarsoccer/nss-backend/pkg/validator"
)

type BillingController struct {
	repo BillingRepository
}

func NewBillingController(repo BillingRepository) *BillingController {
	return &BillingController{repo: repo}
}

// GetCurrentBills godoc
// @Summary Get open bills
// @Description Retrieves the caller's pending and overdue bills with line items, earliest due first
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse{data=[]Bill}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /billing/bills [get]
func (bc *BillingController) GetCurrentBills(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	bills, err := bc.repo.GetOpenBills(userID)
	if err != nil {
		log.Printf("billing: list bills for user %d: %v", userID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve bills")
		return
	}
	if bills == nil {
		bills = []Bill{}
	}

	responses.SendSuccess(c, http.StatusOK, "Bills retrieved successfully", bills)
}

// GetPaymentHistory godoc
// @Summary Get payment history
// @Description Retrieves the caller's past payments, newest first
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Payment}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /billing/payments [get]
func (bc *BillingController) GetPaymentHistory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	payments, total, err := bc.repo.GetPayments(userID, limit, offset)
	if err != nil {
		log.Printf("billing: payment history for user %d: %v", userID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve payment history")
		return
	}
	if payments == nil {
		payments = []Payment{}
	}

	responses.SendPaginated(c, http.StatusOK, "Payment history retrieved successfully", payments, total, page, limit)
}

// GetSummary godoc
// @Summary Get billing summary
// @Description Returns total amount due, total paid this calendar month and the next due date
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} responses.SuccessResponse{data=Summary}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /billing/summary [get]
func (bc *BillingController) GetSummary(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	totalDue, err := bc.repo.SumOpenAmount(userID)
	if err != nil {
		log.Printf("billing: sum open for user %d: %v", userID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to calculate summary")
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	paidThisMonth, err := bc.repo.SumPaidSince(userID, monthStart)
	if err != nil {
		log.Printf("billing: sum paid for user %d: %v", userID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to calculate summary")
		return
	}

	nextDue, err := bc.repo.NextDueDate(userID)
	if err != nil {
		log.Printf("billing: next due for user %d: %v", userID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to calculate summary")
		return
	}

	summary := Summary{
		TotalDue:      totalDue,
		PaidThisMonth: paidThisMonth,
		NextDueDate:   nextDue,
	}

	responses.SendSuccess(c, http.StatusOK, "Billing summary retrieved successfully", summary)
}

// PayBill godoc
// @Summary Pay a bill
// @Description Records a payment against one of the caller's open bills and marks it paid
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Param payment body PayBillRequest true "Payment details"
// @Success 200 {object} responses.SuccessResponse{data=Payment}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /billing/bills/{id}/pay [post]
func (bc *BillingController) PayBill(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	billID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid bill ID")
		return
	}

	var req PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Invalid payment details", validator.ParseError(err))
		return
	}

	bill, err := bc.repo.GetBillByID(uint(billID))
	if err != nil {
		log.Printf("billing: load bill %d: %v", billID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to process payment")
		return
	}
	if bill == nil || bill.UserID != userID {
		responses.NotFound(c, "Bill")
		return
	}
	if bill.Status == BillPaid {
		responses.SendError(c, http.StatusConflict, "Bill is already paid")
		return
	}
	if bill.Status == BillCancelled {
		responses.SendError(c, http.StatusConflict, "Bill has been cancelled")
		return
	}

	payment := &Payment{
		BillID:       bill.ID,
		UserID:       userID,
		Amount:       bill.Amount,
		Method:       req.Method,
		ProcessorRef: req.ProcessorRef,
		Status:       PaymentSucceeded,
	}

	if err := bc.repo.RecordPayment(bill, payment); err != nil {
		log.Printf("billing: record payment for bill %d: %v", bill.ID, err)
		responses.SendError(c, http.StatusInternalServerError, "Failed to process payment")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Payment recorded successfully", payment)
}
