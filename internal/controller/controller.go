package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrx/formforge/internal/dto"
	"github.com/ostrx/formforge/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	formSvc       service.FormService
	questionSvc   service.QuestionService
	submissionSvc service.SubmissionService
}

func NewController(formSvc service.FormService, questionSvc service.QuestionService, submissionSvc service.SubmissionService) *Controller {
	return &Controller{
		formSvc:       formSvc,
		questionSvc:   questionSvc,
		submissionSvc: submissionSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		forms := apiV1.Group("/forms")
		forms.POST("/generate", ctrl.GenerateFormHandler)
		forms.GET("", ctrl.GetAllFormsHandler)
		forms.GET("/:form_uid", ctrl.GetFormHandler)
		forms.POST("/:form_uid/publish", ctrl.PublishFormHandler)
		forms.DELETE("/:form_uid", ctrl.DeleteFormHandler)
		forms.POST("/:form_uid/questions/generate", ctrl.GenerateQuestionsHandler)
		forms.POST("/:form_uid/submissions", ctrl.SubmitFormHandler)
		forms.GET("/:form_uid/submissions", ctrl.GetSubmissionsHandler)
	}

	// Legacy manual-field endpoint, wire contract kept as-is for the form
	// editor client.
	router.POST("/api/form/new", ctrl.AddFieldHandler)
}

// GenerateFormHandler godoc
// @Summary Generate a new form from a description
// @Description Sends the description to the AI model, parses the proposed question set and persists it as a new form
// @Tags forms
// @Accept json
// @Produce json
// @Param request body dto.GenerateFormRequest true "Natural-language form description"
// @Success 201 {object} dto.GenerateFormResponse
// @Failure 400 {object} dto.GenerateFormResponse "Invalid description"
// @Failure 500 {object} dto.GenerateFormResponse "Generation or persistence failure"
// @Failure 502 {object} dto.GenerateFormResponse "AI provider unavailable"
// @Router /forms/generate [post]
func (ctrl *Controller) GenerateFormHandler(c *gin.Context) {
	var req dto.GenerateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateFormRequest")
		c.JSON(http.StatusBadRequest, dto.GenerateFormResponse{Message: "Failed to parse data"})
		return
	}

	data, err := ctrl.formSvc.GenerateForm(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			log.Warn().Err(err).Msg("Rejected form description")
			c.JSON(http.StatusBadRequest, dto.GenerateFormResponse{Message: "Failed to parse data"})
			return
		}
		log.Error().Err(err).Msg("Failed to generate form")
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			status = http.StatusBadGateway
		}
		c.JSON(status, dto.GenerateFormResponse{Message: "Failed to create form"})
		return
	}
	c.JSON(http.StatusCreated, dto.GenerateFormResponse{Message: "success", Data: data})
}

// GetFormHandler godoc
// @Summary Get a form by its public id
// @Description Retrieve a form with its ordered questions and field options
// @Tags forms
// @Produce json
// @Param form_uid path string true "Public form id"
// @Success 200 {object} dto.FormResponse
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{form_uid} [get]
func (ctrl *Controller) GetFormHandler(c *gin.Context) {
	form, err := ctrl.formSvc.GetForm(c.Param("form_uid"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to get form")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// GetAllFormsHandler godoc
// @Summary List all forms
// @Description Retrieve all forms with their question counts
// @Tags forms
// @Produce json
// @Success 200 {array} dto.FormSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms [get]
func (ctrl *Controller) GetAllFormsHandler(c *gin.Context) {
	forms, err := ctrl.formSvc.GetAllForms()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list forms")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve forms"})
		return
	}
	c.JSON(http.StatusOK, forms)
}

// PublishFormHandler godoc
// @Summary Publish a form
// @Description Flips a form's publication status so respondents can fill it out
// @Tags forms
// @Produce json
// @Param form_uid path string true "Public form id"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{form_uid}/publish [post]
func (ctrl *Controller) PublishFormHandler(c *gin.Context) {
	if err := ctrl.formSvc.PublishForm(c.Param("form_uid")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to publish form")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to publish form"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteFormHandler godoc
// @Summary Delete a form
// @Description Removes a form together with its questions, options and submissions
// @Tags forms
// @Param form_uid path string true "Public form id"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{form_uid} [delete]
func (ctrl *Controller) DeleteFormHandler(c *gin.Context) {
	if err := ctrl.formSvc.DeleteForm(c.Param("form_uid")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to delete form")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete form"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateQuestionsHandler godoc
// @Summary Generate additional questions for a form
// @Description Asks the AI model for more questions, passing existing question texts as a deduplication hint, and appends the result
// @Tags questions
// @Accept json
// @Produce json
// @Param form_uid path string true "Public form id"
// @Param request body dto.GenerateQuestionsRequest true "Prompt (optional, defaults to the form's original prompt) and existing-question hint"
// @Success 201 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Generation failure"
// @Failure 502 {object} dto.ErrorResponse "AI provider unavailable"
// @Router /forms/{form_uid}/questions/generate [post]
func (ctrl *Controller) GenerateQuestionsHandler(c *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuestionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to parse data"})
		return
	}

	questions, err := ctrl.questionSvc.GenerateAdditionalQuestions(c.Request.Context(), c.Param("form_uid"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrUpstreamUnavailable):
			log.Error().Err(err).Msg("Failed to generate questions")
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to generate questions"})
		default:
			log.Error().Err(err).Msg("Failed to generate questions")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate questions"})
		}
		return
	}
	c.JSON(http.StatusCreated, questions)
}

// AddFieldHandler godoc
// @Summary Add a manually specified field to a form
// @Description Inserts one question (and its options for choice types) directly, bypassing the AI path
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.AddFieldRequest true "Field specification"
// @Success 200 {object} dto.AddFieldResponse
// @Failure 400 {object} dto.AddFieldResponse "Validation failure"
// @Failure 500 {object} dto.AddFieldResponse "Persistence failure"
// @Router /api/form/new [post]
func (ctrl *Controller) AddFieldHandler(c *gin.Context) {
	var req dto.AddFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AddFieldRequest")
		c.JSON(http.StatusBadRequest, dto.AddFieldResponse{Success: false, Message: "Failed to add field", Error: err.Error()})
		return
	}

	question, err := ctrl.questionSvc.AddManualField(req)
	if err != nil {
		log.Error().Err(err).Msg("Error adding custom field")
		switch {
		case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusBadRequest, dto.AddFieldResponse{Success: false, Message: "Failed to add field", Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, dto.AddFieldResponse{Success: false, Message: "Failed to add field", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, dto.AddFieldResponse{Success: true, Message: "Field added successfully", Question: question})
}

// SubmitFormHandler godoc
// @Summary Submit respondent answers for a form
// @Description Persists one response submission: each answer names a question and either a chosen option or a free-text value
// @Tags submissions
// @Accept json
// @Produce json
// @Param form_uid path string true "Public form id"
// @Param request body dto.SubmitFormRequest true "Answer list"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Persistence failure"
// @Router /forms/{form_uid}/submissions [post]
func (ctrl *Controller) SubmitFormHandler(c *gin.Context) {
	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitFormRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to parse data"})
		return
	}

	submission, err := ctrl.submissionSvc.SubmitResponses(c.Param("form_uid"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			log.Error().Err(err).Msg("Failed to submit form")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to submit form"})
		}
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// GetSubmissionsHandler godoc
// @Summary List submissions for a form
// @Description Retrieve all recorded response submissions with their answers
// @Tags submissions
// @Produce json
// @Param form_uid path string true "Public form id"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /forms/{form_uid}/submissions [get]
func (ctrl *Controller) GetSubmissionsHandler(c *gin.Context) {
	submissions, err := ctrl.submissionSvc.GetSubmissions(c.Param("form_uid"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Form not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to list submissions")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}
