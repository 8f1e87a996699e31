package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

func adminListProducts(c *gin.Context) {
	items, err := ws(c).Products.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

func createProduct(c *gin.Context) {
	saveProduct(c, "", "Produto criado com sucesso!")
}

func updateProduct(c *gin.Context) {
	saveProduct(c, domain.ID(c.Param("id")), "Produto atualizado com sucesso!")
}

func saveProduct(c *gin.Context, id domain.ID, message string) {
	var in forms.Product
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Products.Save(c.Request.Context(), id, in); err != nil {
		failWithAlert(c, err)
		return
	}
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	okWithAlert(c, status, message, nil)
}

func deleteProduct(c *gin.Context) {
	if err := ws(c).Products.Delete(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Produto excluído com sucesso.", nil)
}

// uploadProductImage forwards the multipart "file" field to the backend.
func uploadProductImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Selecione uma imagem.", Field: "file"})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Não foi possível ler a imagem.", Field: "file"})
		return
	}
	defer f.Close()

	name, err := ws(c).Products.UploadImage(c.Request.Context(), header.Filename, f)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"filename": name})
}

func createCategory(c *gin.Context) {
	saveCategory(c, "", http.StatusCreated)
}

func updateCategory(c *gin.Context) {
	saveCategory(c, domain.ID(c.Param("id")), http.StatusOK)
}

func saveCategory(c *gin.Context, id domain.ID, status int) {
	var in forms.Category
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Categories.Save(c.Request.Context(), id, in); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, status, "Categoria salva com sucesso.", nil)
}

func deleteCategory(c *gin.Context) {
	if err := ws(c).Categories.Delete(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Categoria excluída com sucesso.", nil)
}

func listCustomers(c *gin.Context) {
	users, err := ws(c).Session.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}

func updateCustomer(c *gin.Context) {
	var in forms.Profile
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Session.SaveCustomer(c.Request.Context(), domain.ID(c.Param("id")), in); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Cliente atualizado com sucesso.", nil)
}

func setCustomerRole(c *gin.Context) {
	var in forms.RoleActive
	if !bind(c, &in) {
		return
	}
	if err := forms.Validate(in); err != nil {
		writeError(c, err)
		return
	}
	user, err := ws(c).Session.SetRoleActive(c.Request.Context(), domain.ID(c.Param("id")), domain.Role(in.Role), in.Active)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Cliente atualizado com sucesso.", user)
}

func deactivateCustomer(c *gin.Context) {
	if err := ws(c).Session.Deactivate(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Cliente desativado com sucesso.", nil)
}
