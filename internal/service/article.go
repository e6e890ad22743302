package service

import (
	"k8s.io/klog/v2"

	"github.com/czpress/article-api/internal/model"
	"github.com/czpress/article-api/internal/pkg/plaintext"
	"github.com/czpress/article-api/internal/repository"
)

// CustomFieldProvider is the optional custom-field collaborator. A nil
// provider means the capability is absent, which is not an error: subtitle
// resolution falls back to the generic metadata store.
type CustomFieldProvider interface {
	Field(itemID uint, name string) (any, error)
}

// Renderer is the rich-content pipeline applied to article bodies before
// they are returned. The rendered markup goes out verbatim.
type Renderer interface {
	Render(body, format string) (string, error)
}

// Article is the response payload shared by both lookup modes. Subtitle and
// Volume are null when resolution yielded nothing; Author and Title are
// always present, possibly empty.
type Article struct {
	Author   string  `json:"author"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  string  `json:"content"`
	Volume   *string `json:"volume"`
}

// ArticleWithTags is the id-mode payload. Tags is always an array, never null.
type ArticleWithTags struct {
	Article
	Tags []string `json:"tags"`
}

type ArticleService struct {
	content  repository.ContentRepository
	authors  repository.AuthorRepository
	meta     repository.MetaRepository
	volumes  repository.VolumeRepository
	terms    repository.TermRepository
	fields   CustomFieldProvider
	renderer Renderer
}

func NewArticleService(
	content repository.ContentRepository,
	authors repository.AuthorRepository,
	meta repository.MetaRepository,
	volumes repository.VolumeRepository,
	terms repository.TermRepository,
	fields CustomFieldProvider,
	renderer Renderer,
) *ArticleService {
	return &ArticleService{
		content:  content,
		authors:  authors,
		meta:     meta,
		volumes:  volumes,
		terms:    terms,
		fields:   fields,
		renderer: renderer,
	}
}

// GetBySlug resolves one published article by its sanitized slug and
// assembles the denormalized payload. Returns repository.ErrNotFound when
// no published article matches.
func (s *ArticleService) GetBySlug(slug string) (*Article, error) {
	item, err := s.content.GetPublishedArticleBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.assemble(item), nil
}

// GetByID is the id-keyed variant; it additionally collects the article's
// tag terms.
func (s *ArticleService) GetByID(id uint) (*ArticleWithTags, error) {
	item, err := s.content.GetPublishedArticleByID(id)
	if err != nil {
		return nil, err
	}
	return &ArticleWithTags{
		Article: *s.assemble(item),
		Tags:    s.collectTags(item.ID),
	}, nil
}

// assemble runs the enrichers. Each one degrades to an empty value on any
// miss; partial data is preferred over failing the whole request.
func (s *ArticleService) assemble(item *model.ContentItem) *Article {
	return &Article{
		Author:   s.authorName(item.AuthorID),
		Title:    plaintext.Normalize(item.Title),
		Subtitle: nullable(s.subtitle(item.ID)),
		Content:  s.renderBody(item),
		Volume:   nullable(s.volumeTitle(item.ID)),
	}
}

func (s *ArticleService) authorName(authorID uint) string {
	if authorID == 0 {
		return ""
	}
	name, err := s.authors.DisplayName(authorID)
	if err != nil {
		return ""
	}
	return plaintext.Normalize(name)
}

// subtitle consults the custom-field provider first; a non-empty raw value
// there wins over the metadata store, even one that normalizes to empty.
func (s *ArticleService) subtitle(itemID uint) string {
	raw := ""
	if s.fields != nil {
		if v, err := s.fields.Field(itemID, model.SubtitleMetaKey); err == nil {
			if str, ok := v.(string); ok {
				raw = str
			}
		}
	}
	if raw == "" {
		if v, err := s.meta.Get(itemID, model.SubtitleMetaKey); err == nil {
			raw = v
		}
	}
	return plaintext.Normalize(raw)
}

func (s *ArticleService) volumeTitle(itemID uint) string {
	volumeID, err := s.volumes.PrimaryVolumeID(itemID)
	if err != nil || volumeID == 0 {
		return ""
	}
	title, err := s.content.GetTitle(volumeID)
	if err != nil {
		return ""
	}
	return plaintext.Normalize(title)
}

func (s *ArticleService) collectTags(itemID uint) []string {
	tags := []string{}
	terms, err := s.terms.TagsForItem(itemID)
	if err != nil {
		return tags
	}
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		name := plaintext.Normalize(term.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, name)
	}
	return tags
}

func (s *ArticleService) renderBody(item *model.ContentItem) string {
	out, err := s.renderer.Render(item.Body, item.Format)
	if err != nil {
		klog.V(6).Infof("render item %d: %v, falling back to raw body", item.ID, err)
		return item.Body
	}
	return out
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
