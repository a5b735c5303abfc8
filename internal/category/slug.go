package category

import (
	"crud-backend/internal/models"

	"github.com/gosimple/slug"
)

// prepareInsert derives the slug from the name. It runs only on the create
// path; renaming a category keeps its original slug.
func prepareInsert(c *models.Category) {
	c.Slug = slug.Make(c.Name)
}
