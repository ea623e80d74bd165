package album

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// searchBaseURL 是albumoftheyear.org的搜索页地址。
const searchBaseURL = "https://www.albumoftheyear.org/search/"

// searchClient 是用于抓取搜索页的HTTP客户端。
var searchClient = &http.Client{Timeout: 15 * time.Second}

// SearchResult 是搜索页上一个专辑条目的解析结果。
// 字段名与前端消费的JSON保持一致。
type SearchResult struct {
	AlbumName   string `json:"album_name"`
	ArtistName  string `json:"artist_name"`
	ReleaseDate string `json:"release_date"`
	RecordType  string `json:"record_type"`
	ImageURL    string `json:"image_url"`
}

// SearchAlbums 抓取搜索页并解析出专辑列表。
// 页面上每个结果是一个 .albumBlock 节点，发行信息在 .type 中以 "2023 • LP" 的形式出现。
func SearchAlbums(query string) ([]SearchResult, error) {
	searchURL := searchBaseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("无法构造搜索请求: %w", err)
	}
	// 不带UA的请求会被站点拒绝
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := searchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("搜索请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("搜索页返回异常状态码: %d", resp.StatusCode)
	}

	return parseSearchResults(resp.Body)
}

// parseSearchResults 从搜索页HTML中解析专辑条目。
func parseSearchResults(body io.Reader) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("无法解析搜索页HTML: %w", err)
	}

	var results []SearchResult
	doc.Find(".albumBlock").Each(func(_ int, block *goquery.Selection) {
		var r SearchResult

		r.AlbumName = strings.TrimSpace(block.Find(".albumTitle").First().Text())
		r.ArtistName = strings.TrimSpace(block.Find(".artistTitle").First().Text())

		img := block.Find(".image img").First()
		if src, ok := img.Attr("src"); ok && src != "" {
			r.ImageURL = src
		} else if dataSrc, ok := img.Attr("data-src"); ok {
			r.ImageURL = dataSrc
		}

		typeText := strings.TrimSpace(block.Find(".type").First().Text())
		if date, recordType, found := strings.Cut(typeText, "•"); found {
			r.ReleaseDate = strings.TrimSpace(date)
			r.RecordType = strings.TrimSpace(recordType)
		} else {
			r.RecordType = typeText
		}

		// 既没有专辑名也没有艺术家的块是页面装饰，跳过
		if r.AlbumName == "" && r.ArtistName == "" {
			return
		}
		results = append(results, r)
	})

	return results, nil
}
