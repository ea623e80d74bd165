package feed

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"
)

// discoverySeed 为一个用户派生当天的发现内容洗牌种子。
// 种子只依赖 (用户ID, UTC日期)：同一用户在同一天内反复翻页时，
// 发现内容保持同一随机顺序，偏移分页不会因为重新洗牌而跳行或重复；
// 跨天后种子变化，发现内容自然轮换。
func discoverySeed(userID uint, now time.Time) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", userID, now.UTC().Format("2006-01-02"))
	return int64(h.Sum64())
}

// shuffleDiscovery 用给定种子对发现内容做Fisher-Yates洗牌，
// 并把洗牌后的序号写入每行的seq字段作为排序键。
// 输入必须已按稳定顺序（评分ID降序）排列，洗牌结果才可复现。
func shuffleDiscovery(rows []feedRow, seed int64) {
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	for i := range rows {
		rows[i].seq = i
	}
}

// lessFeedRows 是动态的全局排序比较器。
// 规则：优先级升序（关注内容在前）；关注内容内部按评分ID降序；
// 发现内容内部按洗牌序号升序。
func lessFeedRows(a, b feedRow) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.priority == PriorityFollowed {
		return a.ID > b.ID
	}
	return a.seq < b.seq
}

// orderFeed 把两个选择器的输出合并为全局有序的单一序列。
// 两个集合按定义互不相交（作者要么被关注要么没有），直接拼接后整体排序。
func orderFeed(followed, discovery []feedRow) []feedRow {
	merged := make([]feedRow, 0, len(followed)+len(discovery))
	merged = append(merged, followed...)
	merged = append(merged, discovery...)
	sort.SliceStable(merged, func(i, j int) bool {
		return lessFeedRows(merged[i], merged[j])
	})
	return merged
}

// pageBounds 计算偏移分页的切片区间和hasMore标志。
// 请求越界时返回空区间，不是错误。
func pageBounds(total, page, limit int) (start, end int, hasMore bool) {
	// page*limit可能溢出；任何满足 page > total/limit 的页必然超出末尾，
	// 先行短路，偏移量计算只在安全范围内进行
	if limit > 0 && page > total/limit {
		return total, total, false
	}
	start = page * limit
	end = start + limit
	hasMore = end < total

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return start, end, hasMore
}
