package domain

import "time"

// Marketing/content tables managed through the admin console. These are
// ordered lists rendered verbatim by the frontend.

// PricingPlan is one tier on the pricing page.
type PricingPlan struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Name        string   `gorm:"not null"           json:"name"`
	Price       float64  `gorm:"not null"           json:"price"`
	Description string   `json:"description"`
	Features    []string `gorm:"serializer:json"    json:"features"`
	Highlight   bool     `json:"highlight"`
	CTA         string   `json:"cta"`
	Href        string   `json:"href"`
	Badge       string   `json:"badge,omitempty"`
	Order       int      `gorm:"index"              json:"order"`
}

// SalaryCategory groups salary roles on the salary guide page.
type SalaryCategory struct {
	ID    string       `gorm:"primaryKey;size:36" json:"id"`
	Name  string       `gorm:"not null"           json:"name"`
	Order int          `gorm:"index"              json:"order"`
	Roles []SalaryRole `gorm:"foreignKey:CategoryID" json:"roles,omitempty"`
}

// SalaryRole is one role row inside a salary category.
type SalaryRole struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Title      string `gorm:"not null"           json:"title"`
	Range      string `gorm:"not null"           json:"range"`
	Experience string `json:"experience"`
	CategoryID string `gorm:"index;not null"     json:"categoryId"`
}

// SalaryInsight is one callout card on the salary guide page.
type SalaryInsight struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Icon        string `json:"icon"`
	Title       string `gorm:"not null"           json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Bg          string `json:"bg"`
	Order       int    `gorm:"index"              json:"order"`
}

// HiringSolution is one offering on the hiring solutions page.
type HiringSolution struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Title       string   `gorm:"not null"           json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `gorm:"serializer:json"    json:"features"`
	Order       int      `gorm:"index"              json:"order"`
}

// HiringStat is one headline figure on the hiring solutions page.
type HiringStat struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Label string `gorm:"not null"           json:"label"`
	Value string `gorm:"not null"           json:"value"`
	Order int    `gorm:"index"              json:"order"`
}

// HiringPlan is one pricing tier on the hiring solutions page.
type HiringPlan struct {
	ID       string   `gorm:"primaryKey;size:36" json:"id"`
	Name     string   `gorm:"not null"           json:"name"`
	Price    string   `gorm:"not null"           json:"price"`
	Features []string `gorm:"serializer:json"    json:"features"`
	Order    int      `gorm:"index"              json:"order"`
}

// EmployerResourceCategory groups employer resources.
type EmployerResourceCategory struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null"           json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
	Order int    `gorm:"index"              json:"order"`
}

// EmployerGuide is a featured guide for employers.
type EmployerGuide struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"not null"           json:"title"`
	Description string `json:"description"`
	ReadTime    string `json:"readTime"`
	Href        string `json:"href"`
	Order       int    `gorm:"index"              json:"order"`
}

// EmployerDownload is a downloadable employer resource.
type EmployerDownload struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Title  string `gorm:"not null"           json:"title"`
	Format string `json:"format"`
	Href   string `json:"href"`
	Order  int    `gorm:"index"              json:"order"`
}

// EmployerFAQ is one question/answer pair on the employer resources page.
type EmployerFAQ struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Question string `gorm:"not null"           json:"question"`
	Answer   string `gorm:"not null"           json:"answer"`
	Order    int    `gorm:"index"              json:"order"`
}

// PlatformSetting is a single key/value integration setting edited by admins.
type PlatformSetting struct {
	Key       string    `gorm:"primaryKey"   json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
