// internal/content/model.go
//
// CMS content blocks.
//
// A block is a unit of page copy addressed by (page, section).  Pages are
// a closed set matching the storefront routes; sections are free-form
// because editors invent them per page.  Nothing enforces (page, section)
// uniqueness; the public read picks the first active match.

package content

import "time"

// Pages is the closed set of storefront pages a block may target.
// Unknown pages are rejected with a 400 on write.
var Pages = []string{
	"home", "vehicles", "parts", "services",
	"about", "partners", "gallery", "contact",
}

// ValidPage reports whether p names a storefront page.
func ValidPage(p string) bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// Block mirrors one row in the `content` table.
type Block struct {
	ID        uint64    `db:"id"         json:"id"`
	Page      string    `db:"page"       json:"page"`
	Section   string    `db:"section"    json:"section"`
	Title     string    `db:"title"      json:"title"`
	Body      string    `db:"content"    json:"content"`
	ImageURL  string    `db:"image_url"  json:"imageUrl"`
	Order     int       `db:"sort_order" json:"order"`
	IsActive  bool      `db:"is_active"  json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Submission is the create payload.  Page and section are the only
// required fields, as in the legacy schema.
type Submission struct {
	Page     string `json:"page"     validate:"required"`
	Section  string `json:"section"  validate:"required"`
	Title    string `json:"title"`
	Body     string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"` // defaults to true when absent
}

// Patch is the update payload; only submitted fields overwrite.
type Patch struct {
	Page     *string `json:"page"`
	Section  *string `json:"section"`
	Title    *string `json:"title"`
	Body     *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

// Apply merges the submitted fields over b.  The caller stamps UpdatedAt.
func (p *Patch) Apply(b *Block) {
	if p.Page != nil {
		b.Page = *p.Page
	}
	if p.Section != nil {
		b.Section = *p.Section
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Body != nil {
		b.Body = *p.Body
	}
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.Order != nil {
		b.Order = *p.Order
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}
