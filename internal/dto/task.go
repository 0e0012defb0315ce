package dto

import "github.com/collabtrack/project-api/internal/models"

// ContractorDTO identifies the membership responsible for a task
type ContractorDTO struct {
	MembershipID uint64 `json:"membership_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
}

// TaskListItem is a task as seen in project details
type TaskListItem struct {
	ID         uint64         `json:"id"`
	Name       string         `json:"name"`
	Status     string         `json:"status"`
	Contractor *ContractorDTO `json:"contractor"`
}

// CommentDTO is a comment as seen in task details
type CommentDTO struct {
	ID       uint64  `json:"id"`
	Content  string  `json:"content"`
	TaskID   uint64  `json:"task_id"`
	AuthorID *uint64 `json:"author_id"`
}

// TaskDetails is the full task view: comments plus contractor
type TaskDetails struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Contractor  *ContractorDTO `json:"contractor"`
	Comments    []CommentDTO   `json:"comments"`
}

func toContractorDTO(task models.Task) *ContractorDTO {
	if task.ContractorID == nil || task.Contractor == nil {
		return nil
	}
	return &ContractorDTO{
		MembershipID: *task.ContractorID,
		Email:        task.Contractor.User.Email,
		FullName:     task.Contractor.User.FullName,
	}
}

// ToTaskListItem converts a task model to its list entry
func ToTaskListItem(task models.Task) TaskListItem {
	return TaskListItem{
		ID:         task.ID,
		Name:       task.Name,
		Status:     string(task.Status),
		Contractor: toContractorDTO(task),
	}
}

// ToTaskDetails converts a preloaded task model to its details DTO
func ToTaskDetails(task models.Task) TaskDetails {
	details := TaskDetails{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Status:      string(task.Status),
		Contractor:  toContractorDTO(task),
		Comments:    make([]CommentDTO, len(task.Comments)),
	}
	for i, comment := range task.Comments {
		details.Comments[i] = CommentDTO{
			ID:       comment.ID,
			Content:  comment.Content,
			TaskID:   comment.TaskID,
			AuthorID: comment.AuthorID,
		}
	}
	return details
}
