package service

import (
	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/models"
)

// GetContent 加载规格书的全部内容值和子实体
func (s *SpecificationService) GetContent(id string, userID string) (*dto.ContentResponse, error) {
	if _, err := s.getOwned(id, userID); err != nil {
		return nil, err
	}

	spec, err := s.specRepo.GetWithContent(id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ContentResponse{
		SpecificationID:           spec.ID,
		Status:                    spec.Status,
		Values:                    make([]dto.FieldValueOutput, 0, len(spec.ContentValues)),
		Deliverables:              make([]dto.DeliverableInput, 0, len(spec.Deliverables)),
		ContractorRequirements:    make([]dto.ContractorRequirementInput, 0, len(spec.ContractorRequirements)),
		BasicBusinessRequirements: make([]dto.BasicBusinessRequirementInput, 0, len(spec.BasicBusinessRequirements)),
		BusinessTasks:             make([]dto.BusinessTaskInput, 0, len(spec.BusinessTasks)),
	}

	for _, v := range spec.ContentValues {
		out := dto.FieldValueOutput{FieldID: v.FieldID, DataType: v.DataType}
		if v.DataType == models.DataTypeCheckbox {
			out.Values = v.OptionValues
		} else {
			out.Value = v.TextValue
		}
		resp.Values = append(resp.Values, out)
	}
	for _, d := range spec.Deliverables {
		resp.Deliverables = append(resp.Deliverables, dto.DeliverableInput{
			Name: d.Name, Quantity: d.Quantity, Description: d.Description,
		})
	}
	for _, c := range spec.ContractorRequirements {
		resp.ContractorRequirements = append(resp.ContractorRequirements, dto.ContractorRequirementInput{
			Category: c.Category, Description: c.Description,
		})
	}
	for _, b := range spec.BasicBusinessRequirements {
		resp.BasicBusinessRequirements = append(resp.BasicBusinessRequirements, dto.BasicBusinessRequirementInput{
			Category: b.Category, Description: b.Description,
		})
	}
	for _, t := range spec.BusinessTasks {
		resp.BusinessTasks = append(resp.BusinessTasks, dto.BusinessTaskInput{
			Title: t.Title, DetailedSpec: t.DetailedSpec,
		})
	}

	return resp, nil
}

// SaveContent 向导最后一步的权威写入
// 在事务内整体替换内容值和四个子实体数组，保存后状态置为SAVED
func (s *SpecificationService) SaveContent(id string, userID string, req *dto.SaveContentRequest) (*dto.ContentResponse, error) {
	spec, err := s.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	fields, err := s.schemaRepo.GetFieldsBySchemaID(spec.SchemaID)
	if err != nil {
		return nil, err
	}
	fieldsByID := make(map[string]*models.SchemaField, len(fields))
	for i := range fields {
		fieldsByID[fields[i].ID] = &fields[i]
	}

	values := make([]models.SpecContentValue, 0, len(req.Values))
	for _, input := range req.Values {
		field, ok := fieldsByID[input.FieldID]
		if !ok {
			return nil, apperrors.NewValidation("Unknown field: " + input.FieldID)
		}

		value, err := buildContentValue(field, &input)
		if err != nil {
			return nil, err
		}
		values = append(values, *value)
	}

	spec.ContentValues = values
	spec.Deliverables = make([]models.Deliverable, 0, len(req.Deliverables))
	for _, d := range req.Deliverables {
		quantity := d.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		spec.Deliverables = append(spec.Deliverables, models.Deliverable{
			Name: d.Name, Quantity: quantity, Description: d.Description,
		})
	}
	spec.ContractorRequirements = make([]models.ContractorRequirement, 0, len(req.ContractorRequirements))
	for _, c := range req.ContractorRequirements {
		spec.ContractorRequirements = append(spec.ContractorRequirements, models.ContractorRequirement{
			Category: c.Category, Description: c.Description,
		})
	}
	spec.BasicBusinessRequirements = make([]models.BasicBusinessRequirement, 0, len(req.BasicBusinessRequirements))
	for _, b := range req.BasicBusinessRequirements {
		spec.BasicBusinessRequirements = append(spec.BasicBusinessRequirements, models.BasicBusinessRequirement{
			Category: b.Category, Description: b.Description,
		})
	}
	spec.BusinessTasks = make([]models.BusinessTask, 0, len(req.BusinessTasks))
	for _, t := range req.BusinessTasks {
		spec.BusinessTasks = append(spec.BusinessTasks, models.BusinessTask{
			Title: t.Title, DetailedSpec: t.DetailedSpec,
		})
	}

	spec.Status = models.StatusSaved
	if err := s.specRepo.ReplaceContent(spec); err != nil {
		return nil, err
	}

	return s.GetContent(id, userID)
}

// buildContentValue 按字段数据类型构造EAV行
// switch覆盖全部六种类型，标量和多选互斥填充
func buildContentValue(field *models.SchemaField, input *dto.FieldValueInput) (*models.SpecContentValue, error) {
	value := &models.SpecContentValue{
		FieldID:  field.ID,
		DataType: field.DataType,
	}

	switch field.DataType {
	case models.DataTypeText, models.DataTypeTextarea, models.DataTypeDate:
		value.TextValue = input.Value

	case models.DataTypeRadio:
		if input.Value != "" && !field.HasOption(input.Value) {
			return nil, apperrors.NewValidation("Value is not among options for field " + field.FieldName)
		}
		value.TextValue = input.Value

	case models.DataTypeCheckbox:
		for _, v := range input.Values {
			if !field.HasOption(v) {
				return nil, apperrors.NewValidation("Value is not among options for field " + field.FieldName)
			}
		}
		value.OptionValues = input.Values

	case models.DataTypeList:
		// LIST字段的内容走子实体数组，不接受键值对
		return nil, apperrors.NewValidation("LIST field values must be submitted as sub-entities")

	default:
		return nil, apperrors.NewValidation("Invalid data type: " + field.DataType)
	}

	return value, nil
}
