package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"guarashopp-storefront/internal/domain"
)

type homeView struct {
	Products   []domain.Product  `json:"produtos"`
	Categories []domain.Category `json:"categorias"`
}

// home loads the storefront listing and the category menu concurrently.
func home(c *gin.Context) {
	w := ws(c)
	var view homeView
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		items, err := w.Products.ListActive(ctx)
		view.Products = items
		return err
	})
	g.Go(func() error {
		items, err := w.Categories.List(ctx)
		view.Categories = items
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(c, err)
		return
	}
	if view.Products == nil {
		view.Products = []domain.Product{}
	}
	if view.Categories == nil {
		view.Categories = []domain.Category{}
	}
	ok(c, http.StatusOK, view)
}

func listActiveProducts(c *gin.Context) {
	items, err := ws(c).Products.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

func getProduct(c *gin.Context) {
	p, err := ws(c).Products.Get(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

func listCategories(c *gin.Context) {
	items, err := ws(c).Categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}
