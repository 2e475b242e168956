// controllers/entry_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EntryController struct {
	Svc       *services.EntryService
	Analytics *services.AnalyticsService
	RT        *services.RealtimeHub
}

func NewEntryController(svc *services.EntryService, analytics *services.AnalyticsService, rt *services.RealtimeHub) *EntryController {
	return &EntryController{Svc: svc, Analytics: analytics, RT: rt}
}

func (ec *EntryController) AddEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var in services.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.Svc.AddEntry(uid, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.notifyDayUpdated(uid, entry.ConsumedAt)
	c.JSON(http.StatusCreated, entry)
}

func (ec *EntryController) UpdateEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := entryID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var patch services.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ec.Svc.UpdateEntry(uid, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ec.notifyDayUpdated(uid, entry.ConsumedAt)
	c.JSON(http.StatusOK, entry)
}

func (ec *EntryController) DeleteEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := entryID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	entry, err := ec.Svc.GetEntry(uid, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := ec.Svc.DeleteEntry(uid, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ec.notifyDayUpdated(uid, entry.ConsumedAt)
	c.Status(http.StatusNoContent)
}

func (ec *EntryController) GetEntry(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := entryID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	entry, err := ec.Svc.GetEntry(uid, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListEntries returns entries for ?date=YYYY-MM-DD, or the most recent
// entries (?limit=, default 10) when no date is given.
func (ec *EntryController) ListEntries(c *gin.Context) {
	uid := c.GetUint("userID")

	if v := c.Query("date"); v != "" {
		date, err := time.ParseInLocation("2006-01-02", v, time.Now().Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		entries, err := ec.Svc.ListEntriesByDate(uid, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	ec.ListRecent(c)
}

// ListRecent returns the newest entries regardless of day. A ?date= here is
// ignored; the dated listing lives on the parent route.
func (ec *EntryController) ListRecent(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := ec.Svc.ListRecentEntries(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type entryPhotoReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadEntryPhoto stores the photo in S3 and attaches its URL to the entry.
func (ec *EntryController) UploadEntryPhoto(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := entryID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req entryPhotoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "food-photos/"+strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	entry, err := ec.Svc.SetPhotoURL(uid, id, url)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// notifyDayUpdated pushes the recomputed day view over the websocket so
// open clients re-render the affected day without polling.
func (ec *EntryController) notifyDayUpdated(uid uint, when time.Time) {
	if ec.RT == nil {
		return
	}
	payload := gin.H{
		"kind": "day.updated",
		"date": when.Format("2006-01-02"),
	}
	if ec.Analytics != nil {
		if day, err := ec.Analytics.DayView(context.Background(), uid, when); err == nil {
			payload["day"] = day
		}
	}
	ec.RT.Broadcast(uid, payload)
}

func entryID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}
