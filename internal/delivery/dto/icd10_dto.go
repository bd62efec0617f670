package dto

type ICD10CodeResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ICD10SearchResponse struct {
	Results []ICD10CodeResponse `json:"results"`
	Total   int                 `json:"total"`
}
