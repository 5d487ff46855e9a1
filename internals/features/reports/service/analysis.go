package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"google.golang.org/genai"

	"ramadanku_backend/internals/features/reports/model"
)

// ErrAnalysisFailed dikembalikan untuk semua kegagalan provider AI. Pesan
// detail provider sengaja tidak dibocorkan ke klien.
var ErrAnalysisFailed = errors.New("فشل الاتصال بخدمة الذكاء الاصطناعي.")

// MsgNoApprovedData: set laporan approved kosong itu bukan error — analisis
// langsung mengembalikan pesan tetap ini tanpa memanggil provider.
const MsgNoApprovedData = "لا توجد بيانات معتمدة كافية للتحليل. يرجى اعتماد بعض التقارير أولاً."

// Summarizer merangkum laporan approved satu hari jadi narasi.
// Implementasi nyata memanggil model generatif; tes pakai fake.
type Summarizer interface {
	Summarize(ctx context.Context, reports []model.DailyReportModel) (string, error)
}

// GeminiSummarizer memakai Google GenAI.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(ctx context.Context, apiKey, modelName string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY belum di-set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat client GenAI: %w", err)
	}
	return &GeminiSummarizer{client: client, model: modelName}, nil
}

// reportDigest adalah ringkasan per laporan yang dikirim ke model, bukan
// record mentah. Cukup metrik utama + catatan lapangan.
type reportDigest struct {
	Day                string `json:"day"`
	MosqueID           string `json:"mosque_id"`
	TotalWorshippers   int    `json:"total_worshippers"`
	IftarMeals         int    `json:"iftar_meals"`
	QuranStudents      int    `json:"quran_students"`
	DawahBeneficiaries int    `json:"dawah_beneficiaries"`
	Volunteers         int    `json:"volunteers"`
	Notes              string `json:"notes,omitempty"`
}

func digest(reports []model.DailyReportModel) []reportDigest {
	out := make([]reportDigest, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		out = append(out, reportDigest{
			Day:                r.ReportDayCode,
			MosqueID:           r.ReportMosqueID,
			TotalWorshippers:   r.Prayer.MaleWorshippers + r.Prayer.FemaleWorshippers,
			IftarMeals:         r.Iftar.IftarMealsActual,
			QuranStudents:      r.Education.MaleStudents + r.Education.FemaleStudents,
			DawahBeneficiaries: r.Dawah.DawahBeneficiaries,
			Volunteers:         r.Community.Volunteers,
			Notes:              r.ReportNotes,
		})
	}
	return out
}

func marshalDigest(d []reportDigest) (string, error) {
	raw, err := sonic.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

const analysisPromptTemplate = `أنت مستشار خبير في إدارة المشاريع الخيرية.
مهمتك هي تحليل البيانات اليومية لأنشطة المساجد خلال شهر رمضان وتقديم تقرير موجز وذكي.

البيانات التالية هي ملخص للتقارير الميدانية المعتمدة لهذا اليوم:
%s

بناءً على هذه البيانات، يرجى تقديم تحليل باللغة العربية الفصحى يتضمن النقاط التالية بوضوح:

1.  **ملخص تنفيذي:** قدم نظرة عامة موجزة عن أداء اليوم، مع ذكر أبرز الأرقام والإنجازات.
2.  **مشاكل وتحديات متكررة:** استخرج أي مشاكل أو تحديات محتملة تظهر من خلال البيانات أو الملاحظات المرفقة.
3.  **توصيات ذكية:** بناءً على التحليل، قدم توصيات قابلة للتنفيذ لتحسين الأداء في اليوم التالي.

اجعل التقرير منظمًا وسهل القراءة.`

func (g *GeminiSummarizer) Summarize(ctx context.Context, reports []model.DailyReportModel) (string, error) {
	if len(reports) == 0 {
		return MsgNoApprovedData, nil
	}

	raw, err := marshalDigest(digest(reports))
	if err != nil {
		log.Printf("[ERROR] Gagal serialisasi digest laporan: %v", err)
		return "", ErrAnalysisFailed
	}
	prompt := fmt.Sprintf(analysisPromptTemplate, raw)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		log.Printf("[ERROR] GenAI GenerateContent gagal: %v", err)
		return "", ErrAnalysisFailed
	}

	text := resp.Text()
	if text == "" {
		log.Println("[ERROR] GenAI mengembalikan response kosong")
		return "", ErrAnalysisFailed
	}
	return text, nil
}
