package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostelhub/infras/otel"
	"hostelhub/internal/domains/student/model"
	"hostelhub/internal/domains/student/model/dto"
	"hostelhub/internal/domains/student/service"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/validator"
	"hostelhub/transport/http/response"
)

type Handler struct {
	service service.Student
	otel    otel.Otel
}

func New(service service.Student, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/students", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStudent)
		routerGroup.Get("/", handler.GetStudents)
		routerGroup.Get("/{id}", handler.GetStudentByID)
		routerGroup.Patch("/{id}", handler.UpdateStudent)
		routerGroup.Post("/{id}/activate", handler.ActivateStudent)
		routerGroup.Post("/{id}/checkout", handler.CheckoutStudent)
		routerGroup.Post("/{id}/documents", handler.UploadDocument)
		routerGroup.Get("/{id}/documents", handler.GetDocuments)
		routerGroup.Post("/{id}/documents/{documentID}/verify", handler.VerifyDocument)
		routerGroup.Delete("/{id}/documents/{documentID}", handler.DeleteDocument)
	})
}

// CreateStudent enrolls a user as a student of a hostel.
// @Summary Create a new student
// @Description Enroll a user as an applied student of a hostel.
// @Tags Student
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Create Student Request"
// @Success 201 {object} response.Message "Student created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [post]
// @Security BearerAuth
func (handler *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStudent")
	defer scope.End()

	var req dto.CreateStudentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student created successfully")

	response.WithMessage(w, http.StatusCreated, "Student created successfully")
}

// GetStudents retrieves students with optional filters.
// @Summary Get all students
// @Description Retrieve all students with optional filtering and pagination.
// @Tags Student
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hostel_id query string false "Filter by hostel"
// @Param room_id query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetStudentsResponse] "List of students"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students [get]
// @Security BearerAuth
func (handler *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldHostelID, model.FieldRoomID, model.FieldStatus} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	students, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get students")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Students retrieved successfully")

	response.WithJSON(w, http.StatusOK, students)
}

// GetStudentByID retrieves a student by its ID.
// @Summary Get a student by ID
// @Description Retrieve a student by its unique identifier.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Data[dto.StudentResponse] "Student details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStudentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	student, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get student by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student retrieved successfully")

	response.WithJSON(w, http.StatusOK, student)
}

// UpdateStudent updates a student's profile fields.
// @Summary Update a student by ID
// @Description Update the details of an existing student.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Update Student Request"
// @Success 200 {object} response.Message "Student updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStudent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateStudentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student updated successfully")

	response.WithMessage(w, http.StatusOK, "Student updated successfully")
}

// ActivateStudent checks an applied student into a room.
// @Summary Activate a student
// @Description Check an applied student into a room and mark them active.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.ActivateStudentRequest true "Activate Student Request"
// @Success 200 {object} response.Message "Student activated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/activate [post]
// @Security BearerAuth
func (handler *Handler) ActivateStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActivateStudent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.ActivateStudentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Activate(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to activate student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student activated successfully")

	response.WithMessage(w, http.StatusOK, "Student activated successfully")
}

// CheckoutStudent checks an active student out of their room.
// @Summary Check out a student
// @Description Check an active student out of their room and release the room slot.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Message "Student checked out successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutStudent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutStudent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Checkout(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out student")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Student checked out successfully")

	response.WithMessage(w, http.StatusOK, "Student checked out successfully")
}

// UploadDocument attaches a document to a student.
// @Summary Upload a student document
// @Description Upload a base64-encoded document for a student.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UploadDocumentRequest true "Upload Document Request"
// @Success 201 {object} response.Data[dto.DocumentResponse] "Document uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	studentID := chi.URLParam(r, constant.RequestParamID)

	var req dto.UploadDocumentRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	document, err := handler.service.UploadDocument(ctx, req, studentID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document uploaded successfully")

	response.WithJSON(w, http.StatusCreated, document)
}

// GetDocuments lists a student's documents.
// @Summary Get a student's documents
// @Description Retrieve all documents attached to a student.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of documents"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/documents [get]
// @Security BearerAuth
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	studentID := chi.URLParam(r, constant.RequestParamID)

	documents, err := handler.service.GetDocuments(ctx, studentID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// VerifyDocument marks a student document as verified.
// @Summary Verify a student document
// @Description Mark a student document as verified by staff.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} response.Message "Document verified successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/documents/{documentID}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyDocument")
	defer scope.End()

	studentID := chi.URLParam(r, constant.RequestParamID)
	documentID := chi.URLParam(r, "documentID")

	if err := handler.service.VerifyDocument(ctx, studentID, documentID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document verified successfully")

	response.WithMessage(w, http.StatusOK, "Document verified successfully")
}

// DeleteDocument removes a student document.
// @Summary Delete a student document
// @Description Delete a student document and its stored file.
// @Tags Student
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/students/{id}/documents/{documentID} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocument")
	defer scope.End()

	studentID := chi.URLParam(r, constant.RequestParamID)
	documentID := chi.URLParam(r, "documentID")

	if err := handler.service.DeleteDocument(ctx, studentID, documentID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete document")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document deleted successfully")

	response.WithMessage(w, http.StatusOK, "Document deleted successfully")
}
