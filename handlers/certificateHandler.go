package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/utils"
)

func ListCertificates(c *gin.Context) {
	patientId, ok := queryIntPtr(c, "patient_id")
	if !ok {
		return
	}
	certificates, err := models.ListCertificates(c.Request.Context(), patientId)
	if err != nil {
		abortWithError(c, "ListCertificates", err)
		return
	}
	c.JSON(http.StatusOK, certificates)
}

func CreateCertificate(c *gin.Context) {
	var input models.NewCertificate
	if !bindJSON(c, &input) {
		return
	}
	certificate, err := models.CreateCertificate(c.Request.Context(), &input)
	if err != nil {
		abortWithError(c, "CreateCertificate", err)
		return
	}
	recordActivity(c, "drafted certificate "+certificate.Type)
	c.JSON(http.StatusCreated, certificate)
}

func IssueCertificate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	certificate, err := models.IssueCertificate(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "IssueCertificate", err)
		return
	}
	recordActivity(c, "issued certificate "+utils.DereferencePtr(certificate.Number))
	c.JSON(http.StatusOK, certificate)
}

func RevokeCertificate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	certificate, err := models.RevokeCertificate(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "RevokeCertificate", err)
		return
	}
	recordActivity(c, "revoked certificate "+utils.DereferencePtr(certificate.Number))
	c.JSON(http.StatusOK, certificate)
}

// VerifyCertificate is the public lookup by verification code.
func VerifyCertificate(c *gin.Context) {
	code := c.Param("code")
	certificate, err := models.GetCertificateByVerificationCode(c.Request.Context(), code)
	if err != nil {
		if err == utils.ErrorRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
			return
		}
		abortWithError(c, "VerifyCertificate", err)
		return
	}
	c.JSON(http.StatusOK, certificate)
}

func ListActivityLogs(c *gin.Context) {
	userId, ok := queryIntPtr(c, "user_id")
	if !ok {
		return
	}
	entries, err := models.ListActivityLogs(c.Request.Context(), userId)
	if err != nil {
		abortWithError(c, "ListActivityLogs", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
