package api

import (
	"bytes"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/shotcompare/internal/image"
)

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type compareRequest struct {
	AURL     string `json:"a_url"`
	BURL     string `json:"b_url"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CaptionA string `json:"caption_a"`
	DetailA  string `json:"detail_a"`
	CaptionB string `json:"caption_b"`
	DetailB  string `json:"detail_b"`
	LinkURL  string `json:"link_url"`
	MaxWidth int    `json:"max_width"`
}

// compare: fetches the two screenshots by URL and responds with the
// composed comparison PNG. Label fields left empty keep the defaults.
func compareHandler(c *gin.Context) {
	var req compareRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AURL == "" || req.BURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a_url and b_url are required"})
		return
	}

	imgA, err := imagepkg.DownloadImage(req.AURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	imgB, err := imagepkg.DownloadImage(req.BURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	opts := imagepkg.DefaultOptions()
	if req.Title != "" {
		opts.Title = req.Title
	}
	if req.Subtitle != "" {
		opts.Subtitle = req.Subtitle
	}
	if req.CaptionA != "" {
		opts.CaptionA = req.CaptionA
	}
	if req.DetailA != "" {
		opts.DetailA = req.DetailA
	}
	if req.CaptionB != "" {
		opts.CaptionB = req.CaptionB
	}
	if req.DetailB != "" {
		opts.DetailB = req.DetailB
	}
	opts.LinkURL = req.LinkURL
	opts.MaxWidth = req.MaxWidth

	out := imagepkg.Render(imgA, imgB, opts)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for the "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			size = v
		}
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
