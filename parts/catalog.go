// Package parts holds the static part catalog and the loadout rules built
// on top of it: completeness and duplicate validation, team-inventory
// restrictions, display formatting, and the best-effort quick-entry parser.
package parts

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kuniyuki/beybattle-server/models"
)

// Part is one catalog entry. Codes are stable identifiers persisted in
// loadouts and team inventories; names are the display labels.
type Part struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Blades covers the BX and UX lines; CX combinations are assembled from
// the lock chip / main blade / assist blade tables below.
var Blades = []Part{
	{"aeropegasus", "エアロペガサス"},
	{"bearscratch", "ベアスクラッチ"},
	{"blackshell", "ブラックシェル"},
	{"clockmirage", "クロックミラージュ"},
	{"cobaltdragoon", "コバルトドラグーン"},
	{"cobaltdrake", "コバルトドレイク"},
	{"crimsongaruda", "クリムゾンガルーダ"},
	{"crococrunch", "クロコクランチ"},
	{"dranbuster", "ドランバスター"},
	{"drandagger", "ドランダガー"},
	{"dransword", "ドランソード"},
	{"goattackle", "ゴートタックル"},
	{"golemrock", "ゴーレムロック"},
	{"gostcircle", "ゴーストサークル"},
	{"hellschain", "ヘルズチェイン"},
	{"hellshammer", "ヘルズハンマー"},
	{"hellsscythe", "ヘルズサイズ"},
	{"impactdrake", "インパクトドレイク"},
	{"knightlance", "ナイトランス"},
	{"knightmail", "ナイトメイル"},
	{"knightshield", "ナイトシールド"},
	{"leonclaw", "レオンクロー"},
	{"leoncrest", "レオンクレスト"},
	{"meteodragoon", "メテオドラグーン"},
	{"mummycurse", "マミーカース"},
	{"phoenixrudder", "フェニックスラダー"},
	{"phoenixwing", "フェニックスウイング"},
	{"rhinohorn", "ライノホーン"},
	{"samuraisaber", "サムライセイバー"},
	{"scorpiospear", "スコーピオスピア"},
	{"sharkedge", "シャークエッジ"},
	{"sharkgill", "シャークギル"},
	{"sharkscale", "シャークスケイル"},
	{"shinobishadow", "シノビシャドウ"},
	{"silverwolf", "シルバーウルフ"},
	{"tyrannobeat", "タイラノビート"},
	{"unicornsting", "ユニコーンスティング"},
	{"vipertail", "バイパーテイル"},
	{"whalewave", "ホエールウェイブ"},
	{"wizardarrow", "ウィザードアロー"},
	{"wizardrod", "ウィザードロッド"},
	{"wyverngale", "ワイバーンゲイル"},
	{"wyvernhover", "ワイバーンホバー"},
}

// Ratchets are labeled by their own code (blade count and height).
var Ratchets = []Part{
	{"0-60", "0-60"}, {"0-70", "0-70"}, {"0-80", "0-80"},
	{"1-60", "1-60"}, {"1-70", "1-70"}, {"1-80", "1-80"},
	{"2-60", "2-60"}, {"2-70", "2-70"}, {"2-80", "2-80"},
	{"3-60", "3-60"}, {"3-70", "3-70"}, {"3-80", "3-80"}, {"3-85", "3-85"},
	{"4-50", "4-50"}, {"4-55", "4-55"}, {"4-60", "4-60"}, {"4-70", "4-70"}, {"4-80", "4-80"},
	{"5-60", "5-60"}, {"5-70", "5-70"}, {"5-80", "5-80"},
	{"6-60", "6-60"}, {"6-70", "6-70"}, {"6-80", "6-80"},
	{"7-55", "7-55"}, {"7-60", "7-60"}, {"7-70", "7-70"}, {"7-80", "7-80"},
	{"9-60", "9-60"}, {"9-65", "9-65"}, {"9-70", "9-70"}, {"9-80", "9-80"},
	{"M-85", "M-85"},
}

var Bits = []Part{
	{"A", "アクセル"}, {"B", "ボール"}, {"BS", "バウンドスパイク"},
	{"C", "サイクロン"}, {"D", "ドット"}, {"DB", "ディスクボール"},
	{"E", "エレベート"}, {"F", "フラット"}, {"FB", "フリーボール"},
	{"G", "グライド"}, {"GB", "ギヤボール"}, {"GF", "ギヤフラット"},
	{"GN", "ギヤニードル"}, {"GP", "ギヤポイント"}, {"GR", "ギアラッシュ"},
	{"H", "ヘキサ"}, {"HN", "ハイニードル"}, {"HT", "ハイテーパー"},
	{"K", "キック"}, {"L", "レベル"}, {"LF", "ローフラット"},
	{"LO", "ローオーブ"}, {"LR", "ローラッシュ"}, {"M", "マージ"},
	{"MN", "メタルニードル"}, {"N", "ニードル"}, {"O", "オーブ"},
	{"Op", "オペレート"}, {"P", "ポイント"}, {"Q", "クエイク"},
	{"R", "ラッシュ"}, {"RA", "ラバーアクセル"}, {"S", "スパイク"},
	{"T", "テーパー"}, {"TK", "トランスキック"}, {"TP", "トランスポイント"},
	{"Tr", "ターボ"}, {"U", "ユナイト"}, {"UF", "アンダーフラット"},
	{"UN", "アンダーニードル"}, {"V", "ボルテックス"}, {"W", "ウェッジ"},
	{"WB", "ウォールボール"}, {"WW", "ウォールウェッジ"}, {"Z", "ザップ"},
}

var CxLockChips = []Part{
	{"cerberus", "ケルベロス"}, {"dran", "ドラン"}, {"emperor", "エンペラー"},
	{"fox", "フォックス"}, {"hells", "ヘルズ"}, {"leon", "レオン"},
	{"pegasus", "ペガサス"}, {"perseus", "ペルセウス"}, {"phoenix", "フェニックス"},
	{"rhino", "ライノ"}, {"sol", "ソル"}, {"valkyrie", "ワルキューレ"},
	{"whale", "ホエール"}, {"wizard", "ウィザード"}, {"wolf", "ウルフ"},
}

var CxMainBlades = []Part{
	{"arc", "アーク"}, {"blast", "ブラスト"}, {"brave", "ブレイブ"},
	{"brush", "ブラッシュ"}, {"dark", "ダーク"}, {"eclipse", "エクリプス"},
	{"fang", "ファング"}, {"flame", "フレイム"}, {"flare", "フレア"},
	{"hunt", "ハント"}, {"might", "マイト"}, {"reaper", "リーパー"},
	{"volt", "ボルト"},
}

var CxAssistBlades = []Part{
	{"A", "アサルト"}, {"B", "バンパー"}, {"C", "チャージ"},
	{"D", "デュアル"}, {"F", "フリー"}, {"H", "ヘビー"},
	{"J", "ジャギー"}, {"M", "マッシブ"}, {"R", "ラウンド"},
	{"S", "スラッシュ"}, {"T", "ターン"}, {"W", "ホイール"},
	{"Z", "ジリオン"},
}

func kindTable(kind models.PartKind) []Part {
	switch kind {
	case models.PartBlade:
		return Blades
	case models.PartRatchet:
		return Ratchets
	case models.PartBit:
		return Bits
	case models.PartCxLockChip:
		return CxLockChips
	case models.PartCxMainBlade:
		return CxMainBlades
	case models.PartCxAssist:
		return CxAssistBlades
	}
	return nil
}

// Find looks up a catalog part by kind and code.
func Find(kind models.PartKind, code string) (Part, bool) {
	for _, p := range kindTable(kind) {
		if p.Code == code {
			return p, true
		}
	}
	return Part{}, false
}

// Name returns the display name for a code, falling back to the code
// itself for parts missing from the catalog subset.
func Name(kind models.PartKind, code string) string {
	if p, ok := Find(kind, code); ok {
		return p.Name
	}
	return code
}

// RatchetsByCode returns the ratchet table sorted numerically by blade
// count then height (M sorts as zero).
func RatchetsByCode() []Part {
	sorted := make([]Part, len(Ratchets))
	copy(sorted, Ratchets)
	toNums := func(code string) (int, int) {
		fields := strings.SplitN(code, "-", 2)
		clean := func(s string) int {
			digits := strings.Map(func(r rune) rune {
				if r >= '0' && r <= '9' {
					return r
				}
				return -1
			}, s)
			n, _ := strconv.Atoi(digits)
			return n
		}
		if len(fields) != 2 {
			return 0, 0
		}
		return clean(fields[0]), clean(fields[1])
	}
	sort.Slice(sorted, func(i, j int) bool {
		a1, a2 := toNums(sorted[i].Code)
		b1, b2 := toNums(sorted[j].Code)
		if a1 != b1 {
			return a1 < b1
		}
		return a2 < b2
	})
	return sorted
}
