package oracle

// resultSchema контракт ответа классификатора резюме
const resultSchema = `{
  "type": "object",
  "properties": {
    "applicant_name": {"type": "string", "minLength": 1},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "degree_level": {"type": "string"},
          "degree_name": {"type": "string"},
          "major": {"type": "string"},
          "institution": {"type": "string"},
          "graduation_date": {"type": "string"}
        }
      }
    },
    "mq_results": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "requirement": {"type": "string"},
          "status": {"type": "string", "enum": ["pass", "fail", "unclear"]},
          "evidence": {"type": "string"},
          "confidence": {"type": "number", "minimum": 0, "maximum": 100}
        },
        "required": ["requirement", "status", "evidence", "confidence"]
      }
    },
    "match_percentage": {"type": "number", "minimum": 0, "maximum": 100},
    "relevant_experience_years": {"type": "number", "minimum": 0},
    "total_experience_years": {"type": "number", "minimum": 0},
    "executive_summary": {"type": "string"},
    "ai_label": {"type": "string", "enum": ["Likely Qualified", "Needs Review", "Likely Not Qualified"]},
    "confidence": {"type": "number", "minimum": 0, "maximum": 100},
    "ai_reasoning": {"type": "string"}
  },
  "required": ["applicant_name", "ai_label", "confidence", "mq_results"]
}`
