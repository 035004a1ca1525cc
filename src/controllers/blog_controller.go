package controllers

import (
	"Agency-Backend/src/models"
	"Agency-Backend/src/services/blogs"
	"Agency-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBlogPost godoc
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body body models.BlogPost true "Blog post"
// @Success      201  {object}  models.BlogPost
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /blog [post]
func CreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := utils.Validate.Struct(&post); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := blogs.CreatePost(c.Context(), &post); err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not create blog post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetBlogPosts - public list of published posts.
func GetBlogPosts(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	params.Normalize()

	result, err := blogs.GetPosts(c.Context(), params, true)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not fetch blog posts", err)
	}
	return c.JSON(result)
}

// GetAllBlogPosts - dashboard list including drafts.
func GetAllBlogPosts(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	params.Normalize()

	result, err := blogs.GetPosts(c.Context(), params, false)
	if err != nil {
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not fetch blog posts", err)
	}
	return c.JSON(result)
}

// GetBlogPostBySlug - one published post for the public site.
func GetBlogPostBySlug(c *fiber.Ctx) error {
	post, err := blogs.GetPostBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Blog post not found")
	}
	return c.JSON(post)
}

// UpdateBlogPost - replace a post's content.
func UpdateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := blogs.UpdatePost(c.Context(), c.Params("id"), &post)
	if err != nil {
		if err == blogs.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Blog post not found")
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not update blog post", err)
	}
	return c.JSON(updated)
}

// DeleteBlogPost - remove a post.
func DeleteBlogPost(c *fiber.Ctx) error {
	if err := blogs.DeletePost(c.Context(), c.Params("id")); err != nil {
		if err == blogs.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Blog post not found")
		}
		return utils.HandleErrorWithDetails(c, fiber.StatusInternalServerError, "Could not delete blog post", err)
	}
	return c.JSON(fiber.Map{"message": "Blog post deleted successfully"})
}
