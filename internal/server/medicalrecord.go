package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	medrecdomain "github.com/petcareops/vetclinic/internal/medicalrecord/domain"
)

func (s *Server) ListMedicalRecords(c *gin.Context) {
	resp, err := s.medicalSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMedicalRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := s.medicalSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateMedicalRecord(c *gin.Context) {
	var req medrecdomain.MedicalRecordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.medicalSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func isMedicalRecordValidationError(err error) bool {
	switch {
	case errors.Is(err, medrecdomain.ErrInvalidDiagnosis),
		errors.Is(err, medrecdomain.ErrInvalidTreatment):
		return true
	default:
		return false
	}
}
