package advisor

import (
	"fmt"
	"strings"
)

// MicrotaskPrompt asks for one tiny, doable task for a depleted user.
const MicrotaskPrompt = "ユーザーは疲れ切っています。座ったままでもできる、1分で終わる、達成感のある超簡単な家事やセルフケアタスクを1つだけ提案してください。日本語で、優しく。"

// FlowerPrompt requests a structured reward artifact. The response must be a
// JSON object; callers strip code fences before parsing.
const FlowerPrompt = `架空の、とても美しく癒やされる「魔法の花」を1つ考案してください。
出力フォーマットはJSONで:
{
    "name": "花の名前",
    "description": "花言葉や特徴の短い説明",
    "emoji": "花を表す絵文字",
    "svg": "この花を描画するシンプルなSVGコード(100x100, rect等は使わずpathやcircleでカラフルに)"
}`

// CoachingPrompt builds the estimate-vs-actual coaching message request.
func CoachingPrompt(taskName string, estimated, actual int) string {
	return fmt.Sprintf(
		"ユーザーは「%s」というタスクを予想%dの労力だと思っていましたが、実際は%dかかりました。自己評価が甘かったようです。優しく、次回の見積もりのための短いアドバイスをください。",
		taskName, estimated, actual,
	)
}

// MenuPrompt builds the composite receipt + regional-context prompt. The
// postal code is passed through unvalidated as free-text context.
func MenuPrompt(postalCode string) string {
	var b strings.Builder

	b.WriteString("あなたは日本の家庭料理のプロフェッショナルなシェフです。\n\n")
	b.WriteString("以下の情報を考慮して、タスクを実行してください。\n")
	b.WriteString("1. ユーザーの郵便番号: ")
	b.WriteString(postalCode)
	b.WriteString("\n")
	b.WriteString("この郵便番号から、その地域のスーパーマーケットの傾向や特産品、地域の雰囲気（高級住宅街、下町など）を推測してください。\n\n")
	b.WriteString("2. 画像（レシート）から購入した食材リストを読み取ってください。\n\n")
	b.WriteString("3. 上記の食材と、推測される地域の「冷蔵庫にありそうな調味料・定番食材」を組み合わせて、\n")
	b.WriteString("【3日分の作り置き（つくおき）メニュー】を提案してください。\n\n")
	b.WriteString("出力構成:\n")
	b.WriteString("- **地域の分析**: ")
	b.WriteString(postalCode)
	b.WriteString("から推測されるライフスタイルへのコメント（優しく）。\n")
	b.WriteString("- **3日間のメニュー**: メインと副菜。\n")
	b.WriteString("- **買い足しリスト**: 足りないものがあれば。\n")
	b.WriteString("- **魔法の調理手順**: 効率よくこれらを一気に作るための、並列処理の手順（例：お湯を沸かしている間に野菜を切る等）。\n\n")
	b.WriteString("トーン＆マナー: 優しく、励ますように。絵文字を多用して。\n")

	return b.String()
}
