package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/paymongo"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/pricing"
	"lodge/internal/domains/booking/repository"
	paymentModel "lodge/internal/domains/payment/model"
	paymentRepo "lodge/internal/domains/payment/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	defaultCurrency = "PHP"

	errOnlineUnavailable = "online payment is temporarily unavailable, please use cash"
	errRoomUnavailable   = "room is not available for the selected date"
	errBookingNotFound   = "booking not found"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	SettlePayment(ctx context.Context, bookingID string, outcome model.PaymentOutcome, transactionID string) (bool, error)
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	paymentRepo paymentRepo.Payment
	tx          postgres.Transactor
	gateway     paymongo.Gateway
	kafka       kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	paymentRepo paymentRepo.Payment,
	tx postgres.Transactor,
	gateway paymongo.Gateway,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		paymentRepo: paymentRepo,
		tx:          tx,
		gateway:     gateway,
		kafka:       kafka,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := gModel.ParseDate(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("check_in_date must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if checkIn.Before(gModel.DateOf(timezone.Now())) {
		return res, failure.BadRequestFromString("check_in_date must not be in the past") // nolint:wrapcheck
	}

	online := req.Method() == dto.PaymentMethodOnline
	if online && !s.gateway.Enabled() {
		return res, failure.BadRequestFromString(errOnlineUnavailable) // nolint:wrapcheck
	}

	actor := actorFrom(ctx)

	var (
		booking model.Booking
		payment paymentModel.Payment
		intent  *paymongo.Intent
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty || !room.Active {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if occupancy := req.Occupancy(); occupancy > room.Capacity {
			return failure.BadRequestFromString(fmt.Sprintf("room %s sleeps at most %d guests, got %d", room.Name, room.Capacity, occupancy)) // nolint:wrapcheck
		}

		total, err := pricing.Calculate(room.RateCard(), pricing.Stay{DurationHours: req.DurationHours, ExtraAdults: req.ExtraAdults})
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		taken, err := s.repo.ExistTx(ctx, tx, holdingFilter(room.ID, checkIn, constant.Empty))
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}

		if taken {
			return failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		booking = req.ToModel(uuid.NewString(), newReference(s.cfg.Booking.ReferencePrefix, timezone.Now()), checkIn, total, actor)
		booking.RoomName = room.Name

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		payment = paymentModel.Payment{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			Amount:        total,
			Currency:      s.currency(),
			PaymentMethod: paymentModel.MethodCashOnArrival,
			Status:        paymentModel.StatusPending,
			Metadata:      gModel.NewMetadata(actor, timezone.Now()),
		}

		next := model.StatusConfirmed

		if online {
			created, err := s.gateway.CreatePaymentIntent(ctx, paymongo.IntentRequest{
				Amount:      total,
				Currency:    payment.Currency,
				Description: fmt.Sprintf("Booking %s - %s", booking.BookingReference, room.Name),
				Metadata: map[string]string{
					paymongo.MetadataBookingID:        booking.ID,
					paymongo.MetadataBookingReference: booking.BookingReference,
				},
			})
			if err != nil {
				log.Error().Err(err).Str("booking_reference", booking.BookingReference).Msg("failed to create payment intent")

				return failure.InternalError(errors.New("failed to create payment intent, please try again")) // nolint:wrapcheck
			}

			intent = &created
			payment.PaymentMethod = paymentModel.MethodOnline
			payment.PaymentReference = &created.ID
			next = model.StatusPendingPayment
		}

		if err = s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		return s.transitionTx(ctx, tx, &booking, next, actor)
	})
	if err != nil {
		if intent != nil {
			log.Warn().Str("intent_id", intent.ID).Str("booking_reference", booking.BookingReference).
				Msg("booking rolled back after its payment intent was created")
		}

		if gRepo.IsUniqueViolation(err, model.ConstraintRoomDateActive) {
			return res, failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		if !isClientError(err) {
			log.Error().Err(err).Msg("failed to create booking")
		}

		return res, err
	}

	res.FromModel(booking, []paymentModel.Payment{payment})

	if intent != nil {
		res.PaymentIntent = &dto.PaymentIntent{ID: intent.ID, ClientKey: intent.ClientKey, Status: intent.Status}
	}

	s.publish(ctx, EventBookingCreated, booking, constant.Empty)
	s.invalidate(ctx, constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.DefaultSort(constant.DefaultValueSortBy, constant.DefaultValueSortDir)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	payments, err := s.paymentsOf(ctx, models)
	if err != nil {
		return res, err
	}

	res.FromModels(models, payments, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.IsValidID(id) {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	payments, err := s.paymentsOf(ctx, []model.Booking{booking})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := gModel.ParseDate(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("check_in_date must be a valid date in YYYY-MM-DD format") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName), roomModel.FieldID, roomModel.FieldActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	taken, err := s.repo.Exist(ctx, holdingFilter(room.ID, checkIn, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	return dto.AvailabilityResponse{
		RoomID:      room.ID,
		CheckInDate: checkIn.String(),
		Available:   !taken,
	}, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateBookingStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	status := model.Status(req.Status)
	if !status.IsValid() {
		return res, failure.BadRequestFromString("invalid booking status") // nolint:wrapcheck
	}

	if !shared.IsValidID(id) {
		return res, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	actor := actorFrom(ctx)

	var (
		booking  model.Booking
		payments []paymentModel.Payment
		previous model.Status
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		previous = booking.Status

		if !previous.CanTransitionTo(status) {
			return failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", previous, status)) // nolint:wrapcheck
		}

		if previous != status {
			if status.HoldsRoom() && !previous.HoldsRoom() {
				taken, err := s.repo.ExistTx(ctx, tx, holdingFilter(booking.RoomID, booking.CheckInDate, booking.ID))
				if err != nil {
					return fmt.Errorf("failed to check availability: %w", err)
				}

				if taken {
					return failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
				}
			}

			if err = s.transitionTx(ctx, tx, &booking, status, actor); err != nil {
				return err
			}
		}

		payments, err = s.paymentRepo.GetAllTx(ctx, tx, paymentParams(), paymentsFilter(booking.ID))
		if err != nil {
			return fmt.Errorf("failed to get payments: %w", err)
		}

		return nil
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err, model.ConstraintRoomDateActive) {
			return res, failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		if !isClientError(err) {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")
		}

		return res, err
	}

	res.FromModel(booking, payments)

	if previous != status {
		s.publish(ctx, EventBookingStatusChanged, booking, previous)
		s.invalidate(ctx, id)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.IsValidID(id) {
		return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	var booking model.Booking

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		if err = s.paymentRepo.DeleteTx(ctx, tx, paymentsFilter(id)); err != nil {
			return fmt.Errorf("failed to delete payments: %w", err)
		}

		if err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		return nil
	})
	if err != nil {
		if !isClientError(err) {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to delete booking")
		}

		return err
	}

	s.publish(ctx, EventBookingDeleted, booking, booking.Status)
	s.invalidate(ctx, id)

	return nil
}

// SettlePayment applies a gateway verdict to a booking and its pending payments. It is
// idempotent: a booking already in the resulting state, or in a state the verdict no
// longer applies to, is left untouched and false is returned.
func (s *serviceImpl) SettlePayment(ctx context.Context, bookingID string, outcome model.PaymentOutcome, transactionID string) (changed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SettlePayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		target        model.Status
		paymentStatus paymentModel.Status
	)

	switch outcome {
	case model.PaymentSucceeded:
		target, paymentStatus = model.StatusConfirmed, paymentModel.StatusCompleted
	case model.PaymentFailed:
		target, paymentStatus = model.StatusCancelled, paymentModel.StatusFailed
	default:
		return false, failure.BadRequestFromString("unknown payment outcome") // nolint:wrapcheck
	}

	if !shared.IsValidID(bookingID) {
		return false, failure.NotFound(errBookingNotFound) // nolint:wrapcheck
	}

	var (
		booking  model.Booking
		previous model.Status
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound(errBookingNotFound) // nolint:wrapcheck
		}

		previous = booking.Status

		if !settles(previous) {
			log.Warn().
				Str("booking_id", bookingID).
				Str("status", string(previous)).
				Str("outcome", string(outcome)).
				Msg("payment outcome does not apply to booking, skipping")

			return nil
		}

		now := timezone.Now()
		fields := map[string]any{
			paymentModel.FieldStatus:      paymentStatus,
			paymentModel.FieldProcessedAt: now,
			constant.FieldModifiedAt:      now,
			constant.FieldModifiedBy:      constant.ContextSystem,
		}

		if transactionID != constant.Empty {
			fields[paymentModel.FieldTransactionID] = transactionID
		}

		if err = s.paymentRepo.UpdateTx(ctx, tx, fields, pendingPaymentsFilter(bookingID)); err != nil {
			return fmt.Errorf("failed to update payments: %w", err)
		}

		if err = s.transitionTx(ctx, tx, &booking, target, constant.ContextSystem); err != nil {
			return err
		}

		changed = true

		return nil
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err, model.ConstraintRoomDateActive) {
			return false, failure.Conflict(errRoomUnavailable) // nolint:wrapcheck
		}

		return false, err
	}

	if changed {
		s.publish(ctx, EventBookingPaymentSettled, booking, previous)
		s.invalidate(ctx, bookingID)
	}

	return changed, nil
}

// settles reports whether a payment verdict still moves a booking in status current.
// Confirmed, cancelled and completed bookings keep their status whatever the verdict.
func settles(current model.Status) bool {
	return current == model.StatusDraft || current == model.StatusPendingPayment
}

func (s *serviceImpl) transitionTx(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, next model.Status, actor string) error {
	if booking.Status == next {
		return nil
	}

	if !booking.Status.CanTransitionTo(next) {
		return failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = next
	booking.ModifiedAt = now
	booking.ModifiedBy = actor

	return nil
}

func (s *serviceImpl) paymentsOf(ctx context.Context, bookings []model.Booking) ([]paymentModel.Payment, error) {
	if len(bookings) == 0 {
		return nil, nil
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    paymentModel.FieldBookingID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    paymentModel.TableName,
			},
		},
	}

	payments, err := s.paymentRepo.GetAll(ctx, paymentParams(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) currency() string {
	if s.cfg.Booking.Currency == constant.Empty {
		return defaultCurrency
	}

	return s.cfg.Booking.Currency
}

func actorFrom(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.ContextGuest
}

func isClientError(err error) bool {
	code := failure.GetCode(err)

	return code >= 400 && code < 500 //nolint:mnd
}

// holdingFilter matches bookings that occupy roomID on checkIn, optionally ignoring excludeID.
func holdingFilter(roomID string, checkIn gModel.Date, excludeID string) gDto.FilterGroup {
	holding := make([]string, 0, len(model.HoldingStatuses()))
	for _, status := range model.HoldingStatuses() {
		holding = append(holding, string(status))
	}

	filters := []any{
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldCheckInDate, Value: checkIn, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "holding_status", Field: model.FieldStatus, Value: holding, Operator: gDto.FilterOperatorIn, Table: model.TableName},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func paymentsFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: paymentModel.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: paymentModel.TableName},
		},
	}
}

// pendingPaymentsFilter uses its own arg name for status so an UPDATE can set status too.
func pendingPaymentsFilter(bookingID string) gDto.FilterGroup {
	filter := paymentsFilter(bookingID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "current_status",
		Field:    paymentModel.FieldStatus,
		Value:    paymentModel.StatusPending,
		Operator: gDto.FilterOperatorEq,
		Table:    paymentModel.TableName,
	})

	return filter
}

func paymentParams() gDto.QueryParams {
	return gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
}
