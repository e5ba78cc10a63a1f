package controllers

import (
	"io"
	"strconv"

	"coursehub/backend/config"
	"coursehub/backend/media"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Media media.Store
}

func NewCoursesController(db *gorm.DB, cfg *config.Config, store media.Store) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg, Media: store}
}

// GetAllCourses godoc
// @Summary Browse the public course catalog
// @Description Lists courses without their lectures, filtered by keyword and category
// @Tags courses
// @Produce json
// @Param keyword query string false "Title filter"
// @Param category query string false "Category filter"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/courses [get]
func (cc *CoursesController) GetAllCourses(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	category := c.Query("category")

	query := cc.DB.Model(&models.Course{})
	if keyword != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+keyword+"%")
	}
	if category != "" {
		query = query.Where("LOWER(category) LIKE LOWER(?)", "%"+category+"%")
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"courses": courses,
	})
}

// GetTeacherCourses возвращает курсы, созданные преподавателем
func (cc *CoursesController) GetTeacherCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var courses []models.Course
	if err := cc.DB.Where("owner_id = ?", user.ID).Find(&courses).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"courses": courses,
	})
}

func (cc *CoursesController) GetSingleCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	return c.JSON(fiber.Map{
		"course": course,
	})
}

// GetCourseLectures godoc
// @Summary Get the lectures of a course
// @Description Owner sees lectures directly; a subscriber view increments the view counter
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/course/lectures/{id} [get]
func (cc *CoursesController) GetCourseLectures(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Lectures").First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	if course.OwnerID == user.ID {
		return c.JSON(fiber.Map{
			"lectures": course.Lectures,
		})
	}

	var count int64
	cc.DB.Model(&models.Subscription{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	if count == 0 {
		return utils.Forbidden(c, "You Have not subscribed to this course")
	}

	cc.DB.Model(&course).UpdateColumn("views", gorm.Expr("views + 1"))

	return c.JSON(fiber.Map{
		"lectures": course.Lectures,
	})
}

// CreateCourse godoc
// @Summary Create a course with a poster image
// @Tags courses
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/new/course [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	title := c.FormValue("title")
	description := c.FormValue("description")
	category := c.FormValue("category")
	createdBy := c.FormValue("createdBy")
	duration := c.FormValue("duration")
	price := c.FormValue("price")

	if title == "" || description == "" || category == "" || createdBy == "" || duration == "" || price == "" {
		return utils.BadRequest(c, "Please add all fields")
	}

	durationValue, err := strconv.Atoi(duration)
	if err != nil {
		return utils.BadRequest(c, "Invalid duration")
	}
	priceValue, err := strconv.Atoi(price)
	if err != nil {
		return utils.BadRequest(c, "Invalid price")
	}

	filename, data, err := readUpload(c)
	if err != nil {
		return utils.BadRequest(c, "Please add a poster file")
	}

	poster, err := cc.Media.Upload(c.Context(), media.KindImage, filename, data)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	course := models.Course{
		Title:       title,
		Description: description,
		Category:    category,
		CreatedBy:   createdBy,
		OwnerID:     user.ID,
		Duration:    durationValue,
		Price:       priceValue,
		PosterID:    poster.PublicID,
		PosterURL:   poster.URL,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course Created Successfully. You can add lectures now.",
	})
}

// AddLecture загружает видео лекции и добавляет её в курс
func (cc *CoursesController) AddLecture(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "Course not found")
	}

	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return utils.BadRequest(c, "Please add all fields")
	}

	filename, data, err := readUpload(c)
	if err != nil {
		return utils.BadRequest(c, "Please add a video file")
	}

	video, err := cc.Media.Upload(c.Context(), media.KindVideo, filename, data)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	lecture := models.Lecture{
		CourseID:    course.ID,
		Title:       title,
		Description: description,
		VideoID:     video.PublicID,
		VideoURL:    video.URL,
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lecture).Error; err != nil {
			return err
		}
		return cc.syncLectureCount(tx, course.ID)
	})
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"message": "Lecture added in Course",
	})
}

// DeleteCourse удаляет курс владельца вместе с медиафайлами
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Lectures").First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	if course.OwnerID != user.ID {
		return utils.Unauthorized(c, "This Course Is Not Created By You")
	}

	return cc.deleteCourse(c, &course)
}

// DeleteCourseByAdmin удаляет любой курс (только для администратора)
func (cc *CoursesController) DeleteCourseByAdmin(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Lectures").First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	return cc.deleteCourse(c, &course)
}

func (cc *CoursesController) deleteCourse(c *fiber.Ctx, course *models.Course) error {
	// Each asset is deleted independently; the catalog rows go away even
	// when some deletions fail, and the failures are reported back.
	var failed []string
	if course.PosterID != "" {
		if err := cc.Media.Delete(c.Context(), course.PosterID); err != nil {
			failed = append(failed, course.PosterID)
		}
	}
	for _, lecture := range course.Lectures {
		if lecture.VideoID == "" {
			continue
		}
		if err := cc.Media.Delete(c.Context(), lecture.VideoID); err != nil {
			failed = append(failed, lecture.VideoID)
		}
	}

	err := cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Lecture{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Subscription{}).Error; err != nil {
			return err
		}
		return tx.Delete(course).Error
	})
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := fiber.Map{
		"message": "Course Deleted Successfully",
	}
	if len(failed) > 0 {
		response["failed_assets"] = failed
	}
	return c.JSON(response)
}

// DeleteLecture godoc
// @Summary Delete a lecture and its stored video
// @Tags courses
// @Produce json
// @Param courseId query int true "Course ID"
// @Param lectureId query int true "Lecture ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/course/lecture [delete]
func (cc *CoursesController) DeleteLecture(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := strconv.Atoi(c.Query("courseId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	lectureID, err := strconv.Atoi(c.Query("lectureId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lecture ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.NotFound(c, "No Course Found")
	}

	if course.OwnerID != user.ID {
		return utils.Unauthorized(c, "This Course Is Not Created By You")
	}

	var lecture models.Lecture
	if err := cc.DB.Where("course_id = ?", course.ID).First(&lecture, lectureID).Error; err != nil {
		return utils.NotFound(c, "No Lecture Found")
	}

	var failed []string
	if lecture.VideoID != "" {
		if err := cc.Media.Delete(c.Context(), lecture.VideoID); err != nil {
			failed = append(failed, lecture.VideoID)
		}
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&lecture).Error; err != nil {
			return err
		}
		return cc.syncLectureCount(tx, course.ID)
	})
	if err != nil {
		return fiber.ErrInternalServerError
	}

	response := fiber.Map{
		"message": "Lecture Deleted Successfully",
	}
	if len(failed) > 0 {
		response["failed_assets"] = failed
	}
	return c.JSON(response)
}

// syncLectureCount keeps num_of_videos equal to the lecture list length.
func (cc *CoursesController) syncLectureCount(tx *gorm.DB, courseID uint) error {
	var count int64
	if err := tx.Model(&models.Lecture{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
		return err
	}
	return tx.Model(&models.Course{}).Where("id = ?", courseID).
		UpdateColumn("num_of_videos", count).Error
}

func readUpload(c *fiber.Ctx) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}

	return fileHeader.Filename, data, nil
}
