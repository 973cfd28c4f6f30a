package dbmodels

import "hr-screening-backend/lib/analytics/engine"

// CandidateSource канал привлечения кандидата и его стоимость
type CandidateSource struct {
	BaseModel
	ApplicationID    string `gorm:"type:varchar(36);index"`
	SourceChannel    string `gorm:"type:varchar(255);index"`
	CostPerApplicant float64
	ConvertedToHire  bool
}

func (s CandidateSource) ToRecord() engine.CandidateSourceRecord {
	return engine.CandidateSourceRecord{
		SourceChannel:    s.SourceChannel,
		CostPerApplicant: s.CostPerApplicant,
		ConvertedToHire:  s.ConvertedToHire,
	}
}
