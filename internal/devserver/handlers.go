package devserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancehq/cli/internal/models"
)

// Error detail strings match what the production backend emits, so client
// behavior against the fixture carries over.
const (
	detailInvalidCredentials = "Invalid email or password."
	detailNoCredentials      = "Authentication credentials were not provided."
	detailInvalidToken       = "Invalid token."
)

const contextUserKey = "user"

func (s *Server) postLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: detailInvalidCredentials})
		return
	}

	user, err := findUserByEmail(s.db, req.Email)
	if err != nil {
		logrus.WithError(err).Errorln("User lookup failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error."})
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: detailInvalidCredentials})
		return
	}

	token, err := issueToken(s.Config.GetSecret(), user.ID, user.Email)
	if err != nil {
		logrus.WithError(err).Errorln("Token issuance failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		User:  user.toModel(),
		Token: token,
	})
}

// authMiddleware guards the resource routes with bearer authentication.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: detailNoCredentials})
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: detailInvalidToken})
			return
		}

		userID, err := parseToken(s.Config.GetSecret(), raw)
		if err != nil {
			logrus.WithError(err).Debugln("Rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: detailInvalidToken})
			return
		}

		c.Set(contextUserKey, userID)
		c.Next()
	}
}

func (s *Server) getClients(c *gin.Context) {
	var records []clientRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error."})
		return
	}

	clients := make([]models.Client, 0, len(records))
	for _, record := range records {
		clients = append(clients, record.toModel())
	}

	c.JSON(http.StatusOK, clients)
}

func (s *Server) getProjects(c *gin.Context) {
	var records []projectRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error."})
		return
	}

	projects := make([]models.Project, 0, len(records))
	for _, record := range records {
		projects = append(projects, record.toModel(false))
	}

	c.JSON(http.StatusOK, projects)
}

func (s *Server) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not found."})
		return
	}

	var record projectRecord
	if err := s.db.Preload("Tasks").First(&record, id).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not found."})
		return
	}

	c.JSON(http.StatusOK, record.toModel(true))
}

func (s *Server) getInvoices(c *gin.Context) {
	var records []invoiceRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Internal server error."})
		return
	}

	invoices := make([]models.Invoice, 0, len(records))
	for _, record := range records {
		invoices = append(invoices, record.toModel())
	}

	c.JSON(http.StatusOK, invoices)
}
