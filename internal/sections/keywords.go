package sections

// TechnicalKeywords returns the heading keywords that mark a section as
// implementation detail. The list targets the Japanese article corpus this
// pipeline serves; matching is case-sensitive substring matching.
func TechnicalKeywords() []string {
	return []string{
		"具体的な実装", "実装方法", "実装手順", "実装詳細",
		"アーキテクチャ", "全体構成",
		"環境構築", "セットアップ", "インストール",
		"FAQ", "よくある質問",
		"参考リンク", "参考文献", "参考資料",
		"ハマりポイント", "トラブルシューティング",
		"コマンド一覧", "API仕様", "エンドポイント",
	}
}

// StoryKeywords returns the heading keywords that mark a section as
// narrative or emotional content.
func StoryKeywords() []string {
	return []string{
		"悩み", "抱えていませんか",
		"ストーリー", "道のり",
		"なぜこのアプローチ", "アプローチを選んだ",
		"壁にぶつかった", "乗り越え方",
		"教訓", "学んだ", "学び",
		"おわりに", "伝えたかった",
		"この記事で得られること",
		"Before", "After", "転機",
		"どん底", "絶望", "突破口",
		"発想の転換",
	}
}
