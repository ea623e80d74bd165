package album

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SearchAlbumRequestBody struct {
	Query string `json:"query" binding:"required"`
}

// SearchAlbum 处理专辑搜索请求，结果来自对外部站点搜索页的实时抓取
func SearchAlbum(c *gin.Context) {
	var body SearchAlbumRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search term"})
		return
	}

	results, err := SearchAlbums(body.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Album search failed", "details": err.Error()})
		return
	}

	if results == nil {
		results = []SearchResult{}
	}
	c.JSON(http.StatusOK, results)
}
