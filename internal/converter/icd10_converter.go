package converter

import (
	"clinic-records/internal/delivery/dto"
	"clinic-records/internal/domain/entity"
)

func ICD10CodesToSearchResponse(codes []entity.ICD10Code) *dto.ICD10SearchResponse {
	resp := &dto.ICD10SearchResponse{
		Results: make([]dto.ICD10CodeResponse, 0, len(codes)),
		Total:   len(codes),
	}
	for _, c := range codes {
		resp.Results = append(resp.Results, dto.ICD10CodeResponse{
			Code: c.Code,
			Name: c.Name,
		})
	}
	return resp
}
