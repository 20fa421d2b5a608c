package api

import (
	"net/http"
	"time"

	"hotel-booking/internal/domain/stay"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q}
}

// @Summary Room calendar
// @Description Availability and nightly price for every date in [from, to)
// @Tags calendar
// @Produce json
// @Param roomId path string true "Room ID"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Date after the last one (YYYY-MM-DD)"
// @Success 200 {object} resdto.RoomCalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomId}/calendar [get]
func (h *CalendarHandler) RoomCalendar(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		abortBadRequest(c, err, "Invalid room id")
		return
	}
	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "from and to are required")
		return
	}
	from, to, err := query.Range()
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrInvalidRange))
		return
	}

	days, err := h.q.RoomCalendar(c.Request.Context(), roomID, from, to)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromCalendarDays(roomID, stay.FormatDate(from), stay.FormatDate(to), days)
	if err != nil {
		abortWithUsecaseError(c, errs.Wrap(err, "map calendar response"))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Upsert nightly price
// @Description Set the price override for one night. Merchants may only price rooms of their own hotels.
// @Tags merchant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param date path string true "Night (YYYY-MM-DD)"
// @Param request body reqdto.UpsertPriceRequest true "Price"
// @Success 200 {object} resdto.PriceEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchant/rooms/{roomId}/prices/{date} [put]
func (h *CalendarHandler) UpsertPrice(c *gin.Context) {
	roomID, date, ok := roomAndDate(c)
	if !ok {
		return
	}
	var req reqdto.UpsertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	entry, err := h.cmds.UpsertPrice(c.Request.Context(), req.ToInput(roomID, date, middleware.GetActor(c)))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPriceEntry(entry)
	if err != nil {
		abortWithUsecaseError(c, errs.Wrap(err, "map price response"))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Set inventory allotment
// @Description Set total and blocked units for one night. Writes that would drop below reserved units are rejected.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roomId path string true "Room ID"
// @Param date path string true "Night (YYYY-MM-DD)"
// @Param request body reqdto.SetInventoryRequest true "Allotment"
// @Success 200 {object} resdto.InventoryDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rooms/{roomId}/inventory/{date} [put]
func (h *CalendarHandler) SetInventory(c *gin.Context) {
	roomID, date, ok := roomAndDate(c)
	if !ok {
		return
	}
	var req reqdto.SetInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "total_units or blocked_units is required")
		return
	}

	day, err := h.cmds.SetInventory(c.Request.Context(), req.ToInput(roomID, date))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromInventoryDay(day)
	if err != nil {
		abortWithUsecaseError(c, errs.Wrap(err, "map inventory response"))
		return
	}
	c.JSON(http.StatusOK, res)
}

func roomAndDate(c *gin.Context) (uuid.UUID, time.Time, bool) {
	roomID, err := uuid.Parse(c.Param("roomId"))
	if err != nil {
		abortBadRequest(c, err, "Invalid room id")
		return uuid.Nil, time.Time{}, false
	}
	date, err := stay.ParseDate(c.Param("date"))
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrInvalidRange))
		return uuid.Nil, time.Time{}, false
	}
	return roomID, date, true
}
