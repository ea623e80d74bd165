package album

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPageFixture = `
<html><body>
<div class="albumBlock">
  <div class="image"><a href="/album/1.php"><img src="https://cdn.example/covers/ok-computer.jpg"/></a></div>
  <div class="artistTitle">Radiohead</div>
  <div class="albumTitle">OK Computer</div>
  <div class="type">1997 • LP</div>
</div>
<div class="albumBlock">
  <div class="image"><a href="/album/2.php"><img data-src="https://cdn.example/covers/lazy.jpg"/></a></div>
  <div class="artistTitle">Burial</div>
  <div class="albumTitle">Untrue</div>
  <div class="type">Mixtape</div>
</div>
<div class="albumBlock">
  <div class="image"></div>
  <div class="type">2020 • EP</div>
</div>
</body></html>`

func TestParseSearchResults(t *testing.T) {
	results, err := parseSearchResults(strings.NewReader(searchPageFixture))
	require.NoError(t, err)

	// 第三个块没有专辑名和艺术家，应被跳过
	require.Len(t, results, 2)

	assert.Equal(t, SearchResult{
		AlbumName:   "OK Computer",
		ArtistName:  "Radiohead",
		ReleaseDate: "1997",
		RecordType:  "LP",
		ImageURL:    "https://cdn.example/covers/ok-computer.jpg",
	}, results[0])

	// 懒加载图片落在data-src上；没有“•”分隔时整段是类型
	assert.Equal(t, SearchResult{
		AlbumName:  "Untrue",
		ArtistName: "Burial",
		RecordType: "Mixtape",
		ImageURL:   "https://cdn.example/covers/lazy.jpg",
	}, results[1])
}

func TestParseSearchResultsEmptyPage(t *testing.T) {
	results, err := parseSearchResults(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, results)
}
