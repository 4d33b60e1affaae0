package Controllers

import (
	"Nathkrupa/Models"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardNoteHandler handles the date-pinned notes on the dashboard
type DashboardNoteHandler struct {
	DB *gorm.DB
}

func NewDashboardNoteHandler(db *gorm.DB) *DashboardNoteHandler {
	return &DashboardNoteHandler{DB: db}
}

// GetNotes lists notes, optionally narrowed to one date or one month.
func (h *DashboardNoteHandler) GetNotes(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.DashboardNote{})

	if date := c.Query("date"); date != "" {
		query = query.Where("note_date = ?", date)
	} else if monthParam := c.Query("month"); monthParam != "" {
		month, err := time.Parse("2006-01", monthParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid month, expected YYYY-MM",
			})
		}
		firstDay := month.Format("2006-01-02")
		lastDay := month.AddDate(0, 1, -1).Format("2006-01-02")
		query = query.Where("note_date >= ? AND note_date <= ?", firstDay, lastDay)
	}

	var notes []Models.DashboardNote
	if err := query.Order("note_date DESC, id DESC").Find(&notes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve notes",
		})
	}
	return c.JSON(notes)
}

func (h *DashboardNoteHandler) CreateNote(c *fiber.Ctx) error {
	var note Models.DashboardNote
	if err := c.BodyParser(&note); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if strings.TrimSpace(note.Note) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Note text is required"})
	}
	if _, err := time.Parse("2006-01-02", note.NoteDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid note date, expected YYYY-MM-DD",
		})
	}

	if err := h.DB.Create(&note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create note",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *DashboardNoteHandler) UpdateNote(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}

	var note Models.DashboardNote
	if err := h.DB.First(&note, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}

	var input Models.DashboardNote
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.NoteDate != "" {
		if _, err := time.Parse("2006-01-02", input.NoteDate); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid note date, expected YYYY-MM-DD",
			})
		}
		note.NoteDate = input.NoteDate
	}
	if input.Note != "" {
		note.Note = input.Note
	}

	h.DB.Save(&note)
	return c.JSON(note)
}

func (h *DashboardNoteHandler) DeleteNote(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}

	var note Models.DashboardNote
	if err := h.DB.First(&note, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}

	h.DB.Delete(&note)
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
