package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
)

func ListTransactions(c *gin.Context) {
	patientId, ok := queryIntPtr(c, "patient_id")
	if !ok {
		return
	}
	transactions, err := models.ListTransactions(c.Request.Context(), patientId)
	if err != nil {
		abortWithError(c, "ListTransactions", err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func GetTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	transaction, err := models.GetTransaction(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "GetTransaction", err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

func CreateTransaction(c *gin.Context) {
	var input models.NewTransaction
	if !bindJSON(c, &input) {
		return
	}
	transaction, err := models.CreateTransaction(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateTransaction", err)
		return
	}
	recordActivity(c, "created transaction "+transaction.ORNumber)
	c.JSON(http.StatusCreated, transaction)
}

type transactionStatusInput struct {
	Status models.TransactionStatus `json:"status" binding:"required"`
}

func SetTransactionStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input transactionStatusInput
	if !bindJSON(c, &input) {
		return
	}
	transaction, err := models.SetTransactionStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		abortWithError(c, "SetTransactionStatus", err)
		return
	}
	recordActivity(c, "set transaction "+transaction.ORNumber+" status to "+string(input.Status))
	c.JSON(http.StatusOK, transaction)
}
