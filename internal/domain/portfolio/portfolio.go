package portfolio

import (
	"fmt"
	"time"

	"twoloom/internal/shared/i18n"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

func (s Status) IsPublished() bool {
	return s == StatusPublished
}

type Portfolio struct {
	id               uint
	title            i18n.LocalizedText
	description      i18n.LocalizedText
	shortDescription i18n.LocalizedText
	thumbnailURL     string
	images           []string
	techStack        []string
	demoURL          string
	githubURL        string
	categoryID       *uint
	featured         bool
	orderIndex       int
	status           Status
	viewCount        int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPortfolio(
	title i18n.LocalizedText,
	description i18n.LocalizedText,
	shortDescription i18n.LocalizedText,
	categoryID *uint,
) (*Portfolio, error) {
	if !title.HasDefault() {
		return nil, fmt.Errorf("title is required for the default locale")
	}
	if !description.HasDefault() {
		return nil, fmt.Errorf("description is required for the default locale")
	}

	now := time.Now()

	return &Portfolio{
		title:            title,
		description:      description,
		shortDescription: shortDescription,
		categoryID:       categoryID,
		status:           StatusDraft,
		images:           []string{},
		techStack:        []string{},
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructPortfolio(
	id uint,
	title i18n.LocalizedText,
	description i18n.LocalizedText,
	shortDescription i18n.LocalizedText,
	thumbnailURL string,
	images []string,
	techStack []string,
	demoURL string,
	githubURL string,
	categoryID *uint,
	featured bool,
	orderIndex int,
	status Status,
	viewCount int,
	createdAt, updatedAt time.Time,
) (*Portfolio, error) {
	if id == 0 {
		return nil, fmt.Errorf("portfolio ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if images == nil {
		images = []string{}
	}
	if techStack == nil {
		techStack = []string{}
	}

	return &Portfolio{
		id:               id,
		title:            title,
		description:      description,
		shortDescription: shortDescription,
		thumbnailURL:     thumbnailURL,
		images:           images,
		techStack:        techStack,
		demoURL:          demoURL,
		githubURL:        githubURL,
		categoryID:       categoryID,
		featured:         featured,
		orderIndex:       orderIndex,
		status:           status,
		viewCount:        viewCount,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (p *Portfolio) ID() uint                             { return p.id }
func (p *Portfolio) Title() i18n.LocalizedText            { return p.title }
func (p *Portfolio) Description() i18n.LocalizedText      { return p.description }
func (p *Portfolio) ShortDescription() i18n.LocalizedText { return p.shortDescription }
func (p *Portfolio) ThumbnailURL() string                 { return p.thumbnailURL }
func (p *Portfolio) DemoURL() string                      { return p.demoURL }
func (p *Portfolio) GithubURL() string                    { return p.githubURL }
func (p *Portfolio) CategoryID() *uint                    { return p.categoryID }
func (p *Portfolio) Featured() bool                       { return p.featured }
func (p *Portfolio) OrderIndex() int                      { return p.orderIndex }
func (p *Portfolio) Status() Status                       { return p.status }
func (p *Portfolio) ViewCount() int                       { return p.viewCount }
func (p *Portfolio) CreatedAt() time.Time                 { return p.createdAt }
func (p *Portfolio) UpdatedAt() time.Time                 { return p.updatedAt }

func (p *Portfolio) Images() []string {
	imagesCopy := make([]string, len(p.images))
	copy(imagesCopy, p.images)
	return imagesCopy
}

func (p *Portfolio) TechStack() []string {
	stackCopy := make([]string, len(p.techStack))
	copy(stackCopy, p.techStack)
	return stackCopy
}

func (p *Portfolio) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("portfolio ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("portfolio ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Portfolio) UpdateContent(
	title i18n.LocalizedText,
	description i18n.LocalizedText,
	shortDescription i18n.LocalizedText,
) error {
	if !title.HasDefault() {
		return fmt.Errorf("title is required for the default locale")
	}
	if !description.HasDefault() {
		return fmt.Errorf("description is required for the default locale")
	}

	p.title = title
	p.description = description
	p.shortDescription = shortDescription
	p.updatedAt = time.Now()
	return nil
}

func (p *Portfolio) UpdateLinks(thumbnailURL, demoURL, githubURL string, images []string) {
	p.thumbnailURL = thumbnailURL
	p.demoURL = demoURL
	p.githubURL = githubURL
	if images == nil {
		images = []string{}
	}
	p.images = images
	p.updatedAt = time.Now()
}

func (p *Portfolio) UpdateTechStack(techStack []string) {
	if techStack == nil {
		techStack = []string{}
	}
	p.techStack = techStack
	p.updatedAt = time.Now()
}

func (p *Portfolio) AssignCategory(categoryID *uint) {
	p.categoryID = categoryID
	p.updatedAt = time.Now()
}

func (p *Portfolio) SetFeatured(featured bool) {
	p.featured = featured
	p.updatedAt = time.Now()
}

func (p *Portfolio) SetOrderIndex(orderIndex int) {
	p.orderIndex = orderIndex
	p.updatedAt = time.Now()
}

func (p *Portfolio) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	p.status = status
	p.updatedAt = time.Now()
	return nil
}
