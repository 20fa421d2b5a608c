package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader    = "Idempotency-Key"
	idempotentReplayHeader  = "Idempotent-Replayed"
	maxIdempotencyKeyLength = 128
)

var errIdempotencyKeyTooLong = errs.New("idempotency key too long")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve inventory for every night of the stay and price it. Replays with the same Idempotency-Key return the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "idempotent replay"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	key := c.GetHeader(idempotencyKeyHeader)
	if len(key) > maxIdempotencyKeyLength {
		abortBadRequest(c, errIdempotencyKeyTooLong, "Idempotency-Key must be at most 128 characters")
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	in, err := req.ToInput(bookingOwner(c, &req), key)
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrInvalidRange))
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), in)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
		c.Header(idempotentReplayHeader, "true")
	}
	h.respondWithBooking(c, status, result.BookingID)
}

// @Summary Get booking
// @Description Get a booking with its hotel and room summary
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Cancel booking
// @Description Cancel a booking and release its inventory. Cancelling twice is a no-op.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	// Built from the committed row; the cached view may predate the cancel.
	view, err := h.q.ReloadBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeBooking(c, http.StatusOK, view)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetBooking(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeBooking(c, status, view)
}

func (h *BookingHandler) writeBooking(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithUsecaseError(c, errs.Wrap(err, "map booking response"))
		return
	}
	c.JSON(status, res)
}

// bookingOwner picks the user a booking is recorded for. The token identity
// wins; only admins may book on behalf of the user_id in the body.
func bookingOwner(c *gin.Context, req *reqdto.CreateBookingRequest) *uuid.UUID {
	actor := middleware.GetActor(c)
	if actor.IsAdmin() && req.UserID != nil {
		return req.UserID
	}
	return actor.UserID
}
