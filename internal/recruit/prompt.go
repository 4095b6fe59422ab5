package recruit

import (
	"fmt"
	"strings"
	"text/template"
)

var analysisPrompt = template.Must(template.New("analysis").Parse(`당신은 채용 공고 분석 전문가입니다. 주어진 PDF 채용 공고 내용을 분석하여 JSON 형식으로 변환해주세요.

중요 규칙:
1. 공고에 여러 직무가 있으면 각 직무별로 별도의 JSON 객체를 만들어야 합니다.
2. 모든 ENUM 값은 반드시 아래 목록에서 선택해야 합니다.
3. 정보가 없는 필드는 합리적인 기본값을 사용하세요.
4. 날짜 형식은 YYYY-MM-DD 입니다.
5. 시간 형식은 HH:mm 입니다 (예: 09:00, 18:00).
6. 여러 직무가 존재한다면 모든 직무를 빠뜨리지 않고 모든 직무별 json 객체를 전부 만들어야 합니다.

직무 카테고리 및 역할 ENUM:
{{.JobCategories}}

회사 유형 ENUM: {{.CompanyTypes}}
계약 유형 ENUM: {{.ContractTypes}}
근무 형태 ENUM: {{.WorkTypes}}
근무일 유형 ENUM: {{.WorkDayTypes}}
급여 유형 ENUM: {{.SalaryTypes}}
언어 ENUM: {{.LanguageTypes}}
비자 ENUM: {{.VisaTypes}}

각 직무에 대해 다음 JSON 형식으로 응답하세요:
{
  "title": "채용 공고 제목 (직무명 포함)",
  "companyImageUrl": "{{.CompanyImageURL}}",
  "companyName": "회사명",
  "zipcode": "우편번호 (없으면 빈 문자열)",
  "address1": "주소1",
  "address2": "상세주소 (없으면 빈 문자열)",
  "companyType": "ENUM 값",
  "representativeName": "대표자명 (없으면 빈 문자열)",
  "establishedDate": "2025-12-03 (없으면 null)",
  "businessType": "업종",
  "jobRoles": ["해당 직무의 ENUM 값들"],
  "languageTypes": ["필요 언어 ENUM 값들"],
  "visas": ["가능 비자 ENUM 값들 (없으면 빈 배열)"],
  "isAlwaysRecruiting": false,
  "recruitStartDate": "채용 시작일(ex, 2025-12-03)",
  "recruitEndDate": "채용 종료일(ex, 2025-12-03)",
  "contractType": "ENUM 값",
  "directInputContractType": "",
  "jobCategories": ["해당 카테고리 ENUM 값"],
  "workType": "ENUM 값",
  "directInputWorkType": "",
  "workDayType": "ENUM 값",
  "directInputWorkDayType": "",
  "workStartTime": "09:00",
  "workEndTime": "18:00",
  "directInputWorkTime": "",
  "salaryType": "ENUM 값",
  "salary": 숫자 (연봉/월급 등, 없으면 0),
  "directInputSalaryType": "",
  "posterImageUrl": "",
  "mainTasks": "주요 업무 내용",
  "qualifications": "자격 요건",
  "preferences": "우대 사항",
  "others": "기타 사항",
  "applicationMethod": "WEBSITE",
  "directInputApplicationMethod": "{{.DirectInputApplicationMethod}}",
  "recruitPublishStatus": "PUBLISHED"
}

companyImageUrl
directInputApplicationMethod
이 두개는 내가 위에 입력한 그대로 입력해주면 돼.

여러 직무가 있으면 JSON 배열로 응답하세요: [{ ... }, { ... }]
단일 직무면 배열 안에 하나만: [{ ... }]

정확히 위에 json 형식대로만 답변해줘야돼.
절대로 다른 컬럼을 추가하거나 빼면 안돼.

반드시 유효한 JSON 배열만 응답하세요. 다른 텍스트는 포함하지 마세요.`))

// BuildAnalysisPrompt renders the PDF posting analysis prompt. The two URLs are
// echoed back verbatim by the model.
func (c *Catalogue) BuildAnalysisPrompt(companyImageURL, directInputApplicationMethod string) (string, error) {
	lines := make([]string, 0, len(c.JobCategories))
	for _, jc := range c.JobCategories {
		lines = append(lines, fmt.Sprintf("%s: %s", jc.Name, strings.Join(jc.Roles, ", ")))
	}

	var sb strings.Builder
	err := analysisPrompt.Execute(&sb, map[string]string{
		"JobCategories":                strings.Join(lines, "\n"),
		"CompanyTypes":                 strings.Join(c.CompanyTypes, ", "),
		"ContractTypes":                strings.Join(c.ContractTypes, ", "),
		"WorkTypes":                    strings.Join(c.WorkTypes, ", "),
		"WorkDayTypes":                 strings.Join(c.WorkDayTypes, ", "),
		"SalaryTypes":                  strings.Join(c.SalaryTypes, ", "),
		"LanguageTypes":                strings.Join(c.LanguageTypes, ", "),
		"VisaTypes":                    strings.Join(c.VisaTypes, ", "),
		"CompanyImageURL":              companyImageURL,
		"DirectInputApplicationMethod": directInputApplicationMethod,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render analysis prompt: %w", err)
	}
	return sb.String(), nil
}
