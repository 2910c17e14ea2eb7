package controllers

import (
	"net/http"
	"strconv"

	"github.com/appdotbuilder/nutri-scan/services"
	"github.com/appdotbuilder/nutri-scan/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ScanController struct {
	Scans *services.ScanService
	Feed  *services.ScanFeed
}

func NewScanController(scans *services.ScanService, feed *services.ScanFeed) *ScanController {
	return &ScanController{Scans: scans, Feed: feed}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// POST /scan  { "barcode": "5901234123457" }
func (sc *ScanController) Scan(c *gin.Context) {
	var req struct {
		Barcode string `json:"barcode" binding:"required,max=50"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.AsValidationError(err))
		return
	}
	result, err := sc.Scans.Scan(req.Barcode, services.ScanMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /scan/recent?limit=50
func (sc *ScanController) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := sc.Scans.Recent(limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /scan/live — websocket feed of scan events
func (sc *ScanController) Live(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := sc.Feed.Register(conn)

	// read loop ends on client close/error; the feed owns the write side
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			sc.Feed.Unregister(cl)
			return
		}
	}
}
