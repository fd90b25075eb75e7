package model

// MaterialType classifies a recommended learning resource.
type MaterialType string

const (
	MaterialArticle       MaterialType = "article"
	MaterialVideo         MaterialType = "video"
	MaterialTutorial      MaterialType = "tutorial"
	MaterialDocumentation MaterialType = "documentation"
	MaterialCourse        MaterialType = "course"
	MaterialBook          MaterialType = "book"
	MaterialBlog          MaterialType = "blog"
	MaterialOther         MaterialType = "other"
)

func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialArticle, MaterialVideo, MaterialTutorial, MaterialDocumentation,
		MaterialCourse, MaterialBook, MaterialBlog, MaterialOther:
		return true
	}
	return false
}
