package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
)

func (s *Server) ListVeterinarians(c *gin.Context) {
	resp, err := s.vetSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVeterinarian(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := s.vetSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateVeterinarian(c *gin.Context) {
	var req vetdomain.VeterinarianInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vetSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ReplaceVeterinarian(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req vetdomain.VeterinarianInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vetSvc.Replace(c.Request.Context(), id, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVeterinarian(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := s.vetSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListVeterinarianAppointments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := s.apptSvc.ListByVeterinarian(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVeterinarianSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	day, err := parseOptionalDate(c.Query("date"), false)
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "invalid date"))
		return
	}

	resp, err := s.apptSvc.Schedule(c.Request.Context(), id, day)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isVeterinarianValidationError(err error) bool {
	switch {
	case errors.Is(err, vetdomain.ErrInvalidLicense),
		errors.Is(err, vetdomain.ErrInvalidName),
		errors.Is(err, vetdomain.ErrInvalidEmail),
		errors.Is(err, vetdomain.ErrInvalidFee),
		errors.Is(err, vetdomain.ErrInvalidRating):
		return true
	default:
		return false
	}
}
