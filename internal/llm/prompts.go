package llm

import "fmt"

// BuildEPDExtractionPrompt creates the prompt for extracting a structured
// product declaration from the raw text of an EPD document.
func BuildEPDExtractionPrompt(epdText string) string {
	return fmt.Sprintf(`You are a highly specialized data extraction bot. Analyze the text of an Environmental Product Declaration (EPD) for a concrete product and extract its physical properties and material composition.

Return a single JSON object with exactly these keys:
{
  "density": number or null,
  "MPa": number or null,
  "max_aggregate_size": number or null,
  "mat_comp": [{"name": "string", "percentage": number}, ...]
}

Instructions:
- "density" is the product density in kg/m3.
- "MPa" is the declared compressive strength in MPa.
- "max_aggregate_size" is the maximum aggregate size in mm.
- "mat_comp" lists every declared material fraction with its mass percentage; keep the producer's original names (they may be in Spanish).
- Use null for any value not stated in the document. Do not guess.
- Do not add any other text, explanation, or formatting. Only the JSON object is allowed.

EPD Text:
"""
%s
"""`, epdText)
}

// BuildConstraintExtractionPrompt creates the prompt for extracting
// technical constraints from the user's free-text project description.
func BuildConstraintExtractionPrompt(customInfo string) string {
	return fmt.Sprintf(`You are a highly specialized data extraction bot. Your task is to analyze a user's text and extract specific technical requirements for concrete.

The requirements to look for are:
1. "min_cement_content" (in kg/m3)
2. "max_w_c_ratio" (a decimal value)
3. "min_mpa_strength" (the compressive strength in MPa)
4. "max_aggregate_size" (in mm)

Instructions:
- Analyze the user's text for any mention of these values (whether explicit or implicit semantic similarities).
- Return a single JSON object containing exactly these four keys.
- If a value is not mentioned or is unclear, its corresponding key must have a value of null.
- Do not add any other text, explanation, or formatting. Only the JSON object is allowed.

User Text:
"%s"`, customInfo)
}

// BuildDrawingExtractionPrompt creates the prompt for extracting
// element-specific requirements and exposure classes from a technical
// drawing's text and annotations.
func BuildDrawingExtractionPrompt(drawingText string) string {
	return fmt.Sprintf(`You are a highly specialized data extraction bot. Analyze the annotations of a structural technical drawing and extract the concrete requirements stated on it.

Return a single JSON object with exactly this structure:
{
  "element_specific_reqs": {
    "strength_class_mpa": number or null,
    "min_cement_content": number or null,
    "max_w_c_ratio": number or null,
    "max_aggregate_size": number or null
  },
  "drawing_exposure_classes": ["string", ...]
}

Instructions:
- "strength_class_mpa" is the cylinder figure of a strength class annotation (e.g. C30/37 yields 30).
- "drawing_exposure_classes" lists every exposure class code annotated on the drawing (e.g. "XC4", "XD2"); use an empty list when none appear.
- Use null for any requirement not stated on the drawing. Do not guess.
- Do not add any other text, explanation, or formatting. Only the JSON object is allowed.

Drawing Text:
"""
%s
"""`, drawingText)
}
