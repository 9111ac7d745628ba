package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/catalog"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

// SearchResult is one matched row tagged with the table it came from.
type SearchResult struct {
	Kind   entities.Kind   `json:"kind"`
	Record entities.Record `json:"record"`
}

type SearchResponse struct {
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// CatalogController exposes the catalog browser. A missing or unknown parent
// title is not an error; it yields an empty list.
type CatalogController struct {
	browser CatalogBrowser
	log     *logger.Logger
}

func NewCatalogController(browser CatalogBrowser, log *logger.Logger) *CatalogController {
	return &CatalogController{browser: browser, log: log}
}

func (cc *CatalogController) ListCourses(c *gin.Context) {
	courses, err := cc.browser.ListCourses()
	if err != nil {
		respondServiceError(c, cc.log, err, "list courses")
		return
	}
	respondList(c, courses)
}

func (cc *CatalogController) ListModules(c *gin.Context) {
	cc.listChildren(c, "course", cc.browser.ListModules)
}

func (cc *CatalogController) ListLessons(c *gin.Context) {
	cc.listChildren(c, "module", cc.browser.ListLessons)
}

func (cc *CatalogController) ListAssignments(c *gin.Context) {
	cc.listChildren(c, "lesson", cc.browser.ListAssignments)
}

func (cc *CatalogController) ListQuizzes(c *gin.Context) {
	cc.listChildren(c, "lesson", cc.browser.ListQuizzes)
}

func (cc *CatalogController) listChildren(c *gin.Context, param string, list func(string) ([]string, error)) {
	titles, err := list(c.Query(param))
	if err != nil {
		respondServiceError(c, cc.log, err, "list by "+param)
		return
	}
	respondList(c, titles)
}

// Search handles GET /api/search?course=&module=&lesson=&assignment=.
func (cc *CatalogController) Search(c *gin.Context) {
	query := catalog.Query{
		Course:     c.Query("course"),
		Module:     c.Query("module"),
		Lesson:     c.Query("lesson"),
		Assignment: c.Query("assignment"),
	}

	records, err := cc.browser.Search(query)
	if err != nil {
		respondServiceError(c, cc.log, err, "search")
		return
	}

	results := make([]SearchResult, 0, len(records))
	for _, r := range records {
		results = append(results, SearchResult{Kind: r.Kind(), Record: r})
	}
	c.JSON(http.StatusOK, SearchResponse{Count: len(results), Results: results})
}
