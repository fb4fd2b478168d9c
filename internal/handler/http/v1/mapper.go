package v1

import (
	"github.com/samber/lo"
	"github.com/shenikar/medical_dispatch/internal/models"
)

func orEmpty(items []string) []string {
	return lo.Ternary(items == nil, []string{}, items)
}

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role.String(),
		Disabled: user.Disabled,
	}
}

func DTOToTeamModel(dto CreateTeamRequest) *models.Team {
	return &models.Team{
		Name:                dto.Name,
		Members:             orEmpty(dto.Members),
		VehicleID:           dto.VehicleID,
		NotificationAddress: dto.NotificationAddress,
	}
}

// DTOToTeamUpdate переводит частичное обновление; статус уже проверен валидатором
func DTOToTeamUpdate(dto UpdateTeamRequest) models.TeamUpdate {
	update := models.TeamUpdate{
		Name:                dto.Name,
		Members:             dto.Members,
		VehicleID:           dto.VehicleID,
		NotificationAddress: dto.NotificationAddress,
	}
	if dto.Status != nil {
		status := models.TeamStatus(*dto.Status)
		update.Status = &status
	}
	return update
}

func ModelToTeamResponse(model *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:                  model.ID,
		Name:                model.Name,
		Members:             orEmpty(model.Members),
		VehicleID:           model.VehicleID,
		Status:              model.Status.String(),
		NotificationAddress: model.NotificationAddress,
	}
}

func ModelsToTeamResponses(teams []*models.Team) []*TeamResponse {
	return lo.Map(teams, func(team *models.Team, _ int) *TeamResponse {
		return ModelToTeamResponse(team)
	})
}

func DTOToDispatchModel(dto CreateDispatchRequest) *models.Dispatch {
	return &models.Dispatch{
		TeamID:      dto.TeamID,
		CallerName:  dto.CallerName,
		CallerPhone: dto.CallerPhone,
		Address:     dto.Address,
		Description: dto.Description,
	}
}

func ModelToDispatchResponse(model *models.Dispatch) *DispatchResponse {
	return &DispatchResponse{
		ID:          model.ID,
		TeamID:      model.TeamID,
		CallerName:  model.CallerName,
		CallerPhone: model.CallerPhone,
		Address:     model.Address,
		Description: model.Description,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		CompletedAt: model.CompletedAt,
	}
}

func ModelsToDispatchResponses(dispatches []*models.Dispatch) []*DispatchResponse {
	return lo.Map(dispatches, func(dispatch *models.Dispatch, _ int) *DispatchResponse {
		return ModelToDispatchResponse(dispatch)
	})
}

func DTOToMedicalFormModel(dto CreateMedicalFormRequest) *models.MedicalForm {
	return &models.MedicalForm{
		PatientName: dto.PatientName,
		PatientAge:  dto.PatientAge,
		Symptoms:    orEmpty(dto.Symptoms),
		VitalSigns: models.VitalSigns{
			BloodPressure: dto.VitalSigns.BloodPressure,
			Pulse:         dto.VitalSigns.Pulse,
			Temperature:   dto.VitalSigns.Temperature,
			Saturation:    dto.VitalSigns.Saturation,
		},
		Procedures:  orEmpty(dto.Procedures),
		Medications: orEmpty(dto.Medications),
		Notes:       dto.Notes,
	}
}

func ModelToMedicalFormResponse(model *models.MedicalForm) *MedicalFormResponse {
	return &MedicalFormResponse{
		ID:          model.ID,
		DispatchID:  model.DispatchID,
		PatientName: model.PatientName,
		PatientAge:  model.PatientAge,
		Symptoms:    orEmpty(model.Symptoms),
		VitalSigns: VitalSignsDTO{
			BloodPressure: model.VitalSigns.BloodPressure,
			Pulse:         model.VitalSigns.Pulse,
			Temperature:   model.VitalSigns.Temperature,
			Saturation:    model.VitalSigns.Saturation,
		},
		Procedures:  orEmpty(model.Procedures),
		Medications: orEmpty(model.Medications),
		Notes:       model.Notes,
		CreatedAt:   model.CreatedAt,
	}
}
