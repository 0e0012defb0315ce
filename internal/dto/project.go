package dto

import "github.com/collabtrack/project-api/internal/models"

// ProjectListItem is one entry of the caller's project list
type ProjectListItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Rank string `json:"rank"`
}

// ParticipantDTO is a project member as seen in project details
type ParticipantDTO struct {
	ID   uint64  `json:"id"`
	Rank string  `json:"rank"`
	User UserDTO `json:"user"`
}

// ProjectDetails is the full project view: tasks plus participants
type ProjectDetails struct {
	ID           uint64           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Tasks        []TaskListItem   `json:"tasks"`
	Participants []ParticipantDTO `json:"participants"`
}

// ToProjectListItems converts the caller's memberships to list entries
func ToProjectListItems(memberships []models.Membership) []ProjectListItem {
	items := make([]ProjectListItem, len(memberships))
	for i, m := range memberships {
		items[i] = ProjectListItem{
			ID:   m.Project.ID,
			Name: m.Project.Name,
			Rank: string(m.Rank),
		}
	}
	return items
}

// ToProjectDetails converts a preloaded project model to its details DTO
func ToProjectDetails(project models.Project) ProjectDetails {
	details := ProjectDetails{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Tasks:        make([]TaskListItem, len(project.Tasks)),
		Participants: make([]ParticipantDTO, len(project.Members)),
	}

	for i, task := range project.Tasks {
		details.Tasks[i] = ToTaskListItem(task)
	}
	for i, member := range project.Members {
		details.Participants[i] = ParticipantDTO{
			ID:   member.ID,
			Rank: string(member.Rank),
			User: ToUserDTO(member.User),
		}
	}
	return details
}
