package seed

import "github.com/vmedia/showreel/internal/domain"

// Default returns the bundled dataset used when no persisted data exists and
// as the ultimate fallback if persistence is entirely unavailable. Callers
// get a fresh copy; mutating it never touches the bundled values.
func Default() domain.Dataset {
	entries := make([]domain.Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return domain.Dataset{Entries: entries, Profile: defaultProfile}
}

var defaultEntries = []domain.Entry{
	{
		ID:           "1",
		Kind:         domain.KindVideo,
		Title:        "Cinematic Travel: Vietnam",
		Client:       "Featured Project",
		SourceURL:    "https://www.youtube.com/watch?v=h6s2S4p4Rxk",
		ThumbnailURL: "https://i3.ytimg.com/vi/h6s2S4p4Rxk/maxresdefault.jpg",
		Description:  "Hành trình khám phá vẻ đẹp Việt Nam qua những thước phim đậm chất điện ảnh.",
	},
	{
		ID:           "2",
		Kind:         domain.KindVideo,
		Title:        "Urban Rhythm",
		Client:       "City Beats",
		SourceURL:    "https://www.youtube.com/embed/ysz5S6P_z-U",
		ThumbnailURL: "https://picsum.photos/id/1033/800/450",
		Description:  "Nhịp sống đô thị sôi động qua lăng kính nghệ thuật.",
	},
	{
		ID:           "3",
		Kind:         domain.KindImage,
		Title:        "Fashion Editorial: Gold",
		Client:       "Vogue Replica",
		SourceURL:    "https://picsum.photos/id/1027/1920/1080",
		ThumbnailURL: "https://picsum.photos/id/1027/800/450",
		Description:  "Bộ ảnh thời trang studio với độ tương phản cao.",
	},
	{
		ID:           "4",
		Kind:         domain.KindVideo,
		Title:        "Wedding Highlights: Minh & Lan",
		Client:       "Private Client",
		SourceURL:    "https://www.youtube.com/embed/6rQxo_QhQzQ",
		ThumbnailURL: "https://picsum.photos/id/1059/800/450",
		Description:  "Khoảnh khắc hạnh phúc được lưu giữ trọn vẹn.",
	},
	{
		ID:           "5",
		Kind:         domain.KindImage,
		Title:        "Product Launch: ZenWatch",
		Client:       "Tech Corp",
		SourceURL:    "https://picsum.photos/id/201/1920/1080",
		ThumbnailURL: "https://picsum.photos/id/201/800/450",
		Description:  "Chụp ảnh sản phẩm phong cách tối giản.",
	},
	{
		ID:           "6",
		Kind:         domain.KindVideo,
		Title:        "Music Video: Night Lights",
		Client:       "Indie Artist",
		SourceURL:    "https://www.youtube.com/embed/J2X5mJ3HDYE",
		ThumbnailURL: "https://picsum.photos/id/1041/800/450",
		Description:  "MV ca nhạc với ánh sáng Neon huyền ảo.",
	},
}

var defaultProfile = domain.Profile{
	Bio:            "VMEDIA Team - Chuyên sản xuất hình ảnh, video kỷ yếu, MV ca nhạc và TVC quảng cáo chuyên nghiệp. Chúng tôi kể câu chuyện của bạn bằng ngôn ngữ điện ảnh.",
	Email:          "contact@vmedia.vn",
	Phone:          "090 123 4567",
	Instagram:      "@vmedia.team",
	Facebook:       "https://www.facebook.com/vmediateam",
	Zalo:           "090 123 4567",
	Address:        "Hà Nội & TP. Hồ Chí Minh",
	SEOTitle:       "VMEDIA - Production House & Creative Studio",
	SEODescription: "VMEDIA Team chuyên quay phim, chụp ảnh kỷ yếu, sản xuất MV, TVC quảng cáo với phong cách điện ảnh, sáng tạo và chuyên nghiệp hàng đầu Việt Nam.",
	SEOKeywords:    "vmedia, quay phim, chụp ảnh, kỷ yếu, mv, tvc, production house, quay phim sự kiện",
}
