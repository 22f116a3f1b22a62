package llm

import "fmt"

// Prompt truncation limits, in characters. Contact details live near the top
// of a resume; skills, education, and experience can appear anywhere.
const (
	skillsPromptLimit     = 3000
	phonePromptLimit      = 1000
	educationPromptLimit  = 3000
	experiencePromptLimit = 3000
)

const roleResumeExpert = `You are an expert technical recruiter with 10+ years of experience analyzing resumes
and identifying professional skills, qualifications, and competencies.`

const skillsInstruction = `I need you to analyze the following resume text and extract ALL relevant professional skills EXPLICITLY mentioned in the resume.

ONLY extract skills that are clearly listed or mentioned. Do NOT infer or add generic skills.

Focus on identifying:
- Programming languages (Python, JavaScript, C++, Java, etc.)
- Frameworks and libraries (FastAPI, Django, React, PyTorch, TensorFlow, etc.)
- Tools and technologies (Docker, Git, AWS, Azure, Kubernetes, etc.)
- Databases (PostgreSQL, MySQL, MongoDB, Redis, etc.)
- Machine learning / AI technologies (LLMs, RAG, computer vision, NLP, etc.)
- Cloud platforms and services (AWS, Azure, GCP and their services)
- DevOps and CI/CD tools (GitHub Actions, Jenkins, GitLab CI, etc.)
- Certifications mentioned

IMPORTANT:
- Your response must be a single, valid, raw JSON array of strings
- Do NOT add any comments, introductory text, or markdown formatting
- Only include skills EXPLICITLY mentioned in the resume text
- Do NOT add generic soft skills unless explicitly listed

JSON format:
["skill1", "skill2", "skill3", ...]

Resume text:
%s

Please place your answer here (JSON array only):`

const phoneInstruction = `I need you to identify the phone number of the candidate from the following resume text.

Look for formats like: +1 (123) 456-7890, +1-123-456-7890, (123) 456-7890, 123-456-7890, etc.

IMPORTANT: Your response must be a single, valid, raw JSON object with the phone field.
Do not add any comments, introductory text, or markdown formatting.
If no phone number is found, return {"phone": null}

JSON format:
{"phone": "+1 (123) 456-7890"}

Resume text:
%s

Please place your answer here (JSON object only):`

const educationInstruction = `I need you to extract ALL education entries from the following resume text.

For each education entry, extract:
- institution: University/College name
- degree: Degree type (BSc, MSc, PhD, etc.)
- field_of_study: Field of study
- graduation_date: Graduation year (or "Present" if ongoing)
- gpa: GPA if listed

IMPORTANT:
- Your response must be a single, valid, raw JSON array of objects
- Do not add any comments, introductory text, or markdown formatting
- Extract ALL education entries, not just the most recent
- If no education is found, return []

JSON format:
[
  {
    "institution": "University Name",
    "degree": "BSc",
    "field_of_study": "Computer Science",
    "graduation_date": "2020",
    "gpa": "3.8"
  }
]

Resume text:
%s

Please place your answer here (JSON array only):`

const experienceInstruction = `I need you to extract ALL work experience entries from the following resume text.

For each experience entry, extract:
- company: Company name
- title: Job title/position
- start_date: Start date (e.g., "May 2025", "Nov 2023")
- end_date: End date (or "Present" if current)
- description: Brief summary of responsibilities (1-2 sentences max)

IMPORTANT:
- Your response must be a single, valid, raw JSON array of objects
- Do not add any comments, introductory text, or markdown formatting
- Extract ALL experience entries in reverse chronological order
- Keep descriptions brief and factual
- If no experience is found, return []

JSON format:
[
  {
    "company": "Company Name",
    "title": "Job Title",
    "start_date": "Jan 2023",
    "end_date": "Present",
    "description": "Brief description of role and responsibilities"
  }
]

Resume text:
%s

Please place your answer here (JSON array only):`

// SkillsPrompt builds the skills extraction prompt.
func SkillsPrompt(text string) string {
	return buildPrompt(skillsInstruction, text, skillsPromptLimit)
}

// PhonePrompt builds the phone extraction prompt.
func PhonePrompt(text string) string {
	return buildPrompt(phoneInstruction, text, phonePromptLimit)
}

// EducationPrompt builds the education extraction prompt.
func EducationPrompt(text string) string {
	return buildPrompt(educationInstruction, text, educationPromptLimit)
}

// ExperiencePrompt builds the experience extraction prompt.
func ExperiencePrompt(text string) string {
	return buildPrompt(experienceInstruction, text, experiencePromptLimit)
}

func buildPrompt(instruction, text string, limit int) string {
	return roleResumeExpert + "\n\n" + fmt.Sprintf(instruction, truncate(text, limit))
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
