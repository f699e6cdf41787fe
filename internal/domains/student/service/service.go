package service

import (
	"context"
	b64 "encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostelhub/config"
	"hostelhub/infras/otel"
	"hostelhub/infras/s3"
	hostelModel "hostelhub/internal/domains/hostel/model"
	hostelRepo "hostelhub/internal/domains/hostel/repository"
	roomModel "hostelhub/internal/domains/room/model"
	roomRepo "hostelhub/internal/domains/room/repository"
	"hostelhub/internal/domains/student/model"
	"hostelhub/internal/domains/student/model/dto"
	"hostelhub/internal/domains/student/repository"
	"hostelhub/shared"
	"hostelhub/shared/base64"
	"hostelhub/shared/cache"
	"hostelhub/shared/constant"
	gDto "hostelhub/shared/dto"
	"hostelhub/shared/failure"
	gModel "hostelhub/shared/model"
	"hostelhub/shared/timezone"
)

const (
	cacheGetStudent    = "student:get"
	cacheGetAllStudent = "student:gets"

	documentDirectory = "student-documents"
)

type Student interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStudentsResponse, error)
	Get(ctx context.Context, id string) (dto.StudentResponse, error)
	Update(ctx context.Context, req dto.UpdateStudentRequest, id string) error
	Activate(ctx context.Context, req dto.ActivateStudentRequest, id string) error
	Checkout(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, studentID string) (dto.DocumentResponse, error)
	GetDocuments(ctx context.Context, studentID string) (dto.GetDocumentsResponse, error)
	VerifyDocument(ctx context.Context, studentID, documentID string) error
	DeleteDocument(ctx context.Context, studentID, documentID string) error
}

type serviceImpl struct {
	repo         repository.Student
	documentRepo repository.Document
	hostelRepo   hostelRepo.Hostel
	roomRepo     roomRepo.Room
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(
	repo repository.Student,
	documentRepo repository.Document,
	hostelRepo hostelRepo.Hostel,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Student {
	return &serviceImpl{
		repo:         repo,
		documentRepo: documentRepo,
		hostelRepo:   hostelRepo,
		roomRepo:     roomRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStudentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hostelExists, err := s.hostelRepo.Exist(ctx, shared.FilterByID(req.HostelID, hostelModel.FieldID, hostelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if hostel exists: %w", err)
	}

	if !hostelExists {
		return failure.BadRequestFromString("hostel does not exist") // nolint:wrapcheck
	}

	enrolled, err := s.repo.Exist(ctx, shared.FilterByID(req.UserID, model.FieldUserID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to check if student exists: %w", err)
	}

	if enrolled {
		return failure.Conflict("user already has a student profile") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create student")

		return fmt.Errorf("failed to create student: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStudentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStudent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count students")

		return res, fmt.Errorf("failed to count students: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get students")

		return res, fmt.Errorf("failed to get students: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save students to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StudentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStudent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	student, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get student")

		return res, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return res, failure.NotFound("student not found") // nolint:wrapcheck
	}

	res.FromModel(student)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save student to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStudentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateStudentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if student exists: %w", err)
	}

	if !exist {
		return failure.NotFound("student not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update student")

		return fmt.Errorf("failed to update student: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Activate moves an applied student into a room. The room must belong
// to the student's hostel and have a free slot.
func (s *serviceImpl) Activate(ctx context.Context, req dto.ActivateStudentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	student, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return failure.NotFound("student not found") // nolint:wrapcheck
	}

	if student.Status != model.StatusApplied {
		return failure.Conflict("only applied students can be activated") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if room.HostelID != student.HostelID {
		return failure.BadRequestFromString("room does not belong to the student's hostel") // nolint:wrapcheck
	}

	if room.Occupied >= room.Capacity {
		return failure.Conflict("room is already at capacity") // nolint:wrapcheck
	}

	now := timezone.Now()

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusActive,
		model.FieldRoomID:        req.RoomID,
		"checked_in_at":          now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to activate student")

		return fmt.Errorf("failed to activate student: %w", err)
	}

	if err := s.occupyRoomSlot(ctx, room, user); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// Checkout ends an active stay and frees the student's room slot.
func (s *serviceImpl) Checkout(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	student, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return failure.NotFound("student not found") // nolint:wrapcheck
	}

	if student.Status != model.StatusActive {
		return failure.Conflict("only active students can be checked out") // nolint:wrapcheck
	}

	now := timezone.Now()

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusCheckedOut,
		model.FieldRoomID:        nil,
		"checked_out_at":         now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to check out student")

		return fmt.Errorf("failed to check out student: %w", err)
	}

	if student.RoomID != nil {
		if err := s.releaseRoomSlot(ctx, *student.RoomID, user); err != nil {
			return err
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UploadDocument(ctx context.Context, req dto.UploadDocumentRequest, studentID string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	student, err := s.repo.Get(ctx, shared.FilterByID(studentID, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get student: %w", err)
	}

	if student.ID == constant.Empty {
		return res, failure.NotFound("student not found") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.File)

	marker := ";base64,"
	idx := strings.Index(req.File, marker)

	if idx == -1 {
		return res, failure.BadRequestFromString("file must be a base64 data URI") // nolint:wrapcheck
	}

	fileData, err := b64.StdEncoding.DecodeString(req.File[idx+len(marker):])
	if err != nil {
		return res, failure.BadRequestFromString("file payload is not valid base64") // nolint:wrapcheck
	}

	document := model.Document{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Kind:      req.Kind,
		FileName:  req.FileName,
		Verified:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, documentDirectory, document.ID, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document")

		return res, fmt.Errorf("failed to upload document: %w", err)
	}

	document.URL = url

	if err = s.documentRepo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to save document")

		return res, fmt.Errorf("failed to save document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetDocuments(ctx context.Context, studentID string) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDocuments")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(studentID, model.FieldDocumentStudentID, model.DocumentTableName)

	models, err := s.documentRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) VerifyDocument(ctx context.Context, studentID, documentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := s.documentFilter(studentID, documentID)

	document, err := s.documentRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err := s.documentRepo.Update(ctx, map[string]any{
		model.FieldDocumentVerified: true,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}, filter); err != nil {
		log.Error().Err(err).Msg("failed to verify document")

		return fmt.Errorf("failed to verify document: %w", err)
	}

	return nil
}

func (s *serviceImpl) DeleteDocument(ctx context.Context, studentID, documentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.documentFilter(studentID, documentID)

	document, err := s.documentRepo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, document.URL)
	if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, documentDirectory, objectName); err != nil {
		log.Error().Err(err).Msg("failed to delete document from storage")

		return fmt.Errorf("failed to delete document from storage: %w", err)
	}

	if err := s.documentRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func (s *serviceImpl) occupyRoomSlot(ctx context.Context, room roomModel.Room, user string) error {
	occupied := room.Occupied + 1

	roomStatus := room.Status
	if occupied >= room.Capacity {
		roomStatus = roomModel.StatusFull
	}

	if err := s.roomRepo.Update(ctx, map[string]any{
		roomModel.FieldOccupied:  occupied,
		roomModel.FieldStatus:    roomStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to occupy room slot")

		return fmt.Errorf("failed to occupy room slot: %w", err)
	}

	return nil
}

func (s *serviceImpl) releaseRoomSlot(ctx context.Context, roomID, user string) error {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	occupied := room.Occupied
	if occupied > 0 {
		occupied--
	}

	roomStatus := room.Status
	if roomStatus == roomModel.StatusFull && occupied < room.Capacity {
		roomStatus = roomModel.StatusAvailable
	}

	if err := s.roomRepo.Update(ctx, map[string]any{
		roomModel.FieldOccupied:  occupied,
		roomModel.FieldStatus:    roomStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to release room slot")

		return fmt.Errorf("failed to release room slot: %w", err)
	}

	return nil
}

func (s *serviceImpl) documentFilter(studentID, documentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDocumentID,
				Operator: gDto.FilterOperatorEq,
				Value:    documentID,
				Table:    model.DocumentTableName,
			},
			gDto.Filter{
				ArgName:  "document_student_id",
				Field:    model.FieldDocumentStudentID,
				Operator: gDto.FilterOperatorEq,
				Value:    studentID,
				Table:    model.DocumentTableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStudent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete student from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStudent)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStudent)
	}()
}
